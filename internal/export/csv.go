// Package export writes processed receipt records to CSV for spreadsheet use.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/semreerol/Receipt-Scanner/internal/models"
)

// Row is the flattened CSV projection of one receipt record. Category-specific
// fields that do not apply to a record stay at the sentinel value.
type Row struct {
	File        string `csv:"Dosya"`
	Category    string `csv:"Kategori"`
	CompanyName string `csv:"Firma"`
	Date        string `csv:"Tarih"`
	TaxTotal    string `csv:"Toplam KDV"`
	GrandTotal  string `csv:"Toplam Tutar"`
	Bank        string `csv:"Banka"`
}

// RowFromRecord projects a record onto a CSV row. The company column takes
// whichever name field the extractor variant produced.
func RowFromRecord(file string, rec *models.ReceiptRecord) Row {
	return Row{
		File:        file,
		Category:    get(rec, models.FieldCategory),
		CompanyName: firstPresent(rec, models.FieldCompanyName, models.FieldMarketName, models.FieldRestaurant),
		Date:        get(rec, models.FieldDate),
		TaxTotal:    get(rec, models.FieldTaxTotal),
		GrandTotal:  get(rec, models.FieldGrandTotal),
		Bank:        firstPresent(rec, "Banka Adı", "Banka İsmi"),
	}
}

// WriteCSV writes the rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the rows to the named file, creating or truncating it.
func WriteCSVFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}

func get(rec *models.ReceiptRecord, key string) string {
	value, ok := rec.Get(key)
	if !ok {
		return models.NotFound
	}
	return value
}

func firstPresent(rec *models.ReceiptRecord, keys ...string) string {
	for _, key := range keys {
		if value, ok := rec.Get(key); ok && value != models.NotFound {
			return value
		}
	}
	return models.NotFound
}
