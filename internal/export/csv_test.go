package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semreerol/Receipt-Scanner/internal/models"
)

func marketRecord() *models.ReceiptRecord {
	rec := &models.ReceiptRecord{}
	rec.Set(models.FieldCategory, models.LabelMarketReceipt)
	rec.Set(models.FieldMarketName, "MİGROS TİCARET")
	rec.Set(models.FieldDate, "01-02-2024")
	rec.Set(models.FieldTaxTotal, "1,20")
	rec.Set(models.FieldGrandTotal, "12,00")
	rec.Set("Banka Adı", "GARANTİ")
	return rec
}

func TestRowFromRecord(t *testing.T) {
	row := RowFromRecord("fis.jpg", marketRecord())

	assert.Equal(t, "fis.jpg", row.File)
	assert.Equal(t, models.LabelMarketReceipt, row.Category)
	assert.Equal(t, "MİGROS TİCARET", row.CompanyName)
	assert.Equal(t, "01-02-2024", row.Date)
	assert.Equal(t, "1,20", row.TaxTotal)
	assert.Equal(t, "12,00", row.GrandTotal)
	assert.Equal(t, "GARANTİ", row.Bank)
}

func TestRowFromRecordPicksRestaurantName(t *testing.T) {
	rec := &models.ReceiptRecord{}
	rec.Set(models.FieldCategory, models.LabelFoodReceipt)
	rec.Set(models.FieldRestaurant, "KÖFTECİ YUSUF")
	rec.Set("Banka İsmi", "AKBANK")

	row := RowFromRecord("adisyon.pdf", rec)
	assert.Equal(t, "KÖFTECİ YUSUF", row.CompanyName)
	assert.Equal(t, "AKBANK", row.Bank)
	assert.Equal(t, models.NotFound, row.Date)
}

func TestRowFromRecordSentinelName(t *testing.T) {
	rec := &models.ReceiptRecord{}
	rec.Set(models.FieldCategory, models.LabelFuelReceipt)
	rec.Set(models.FieldCompanyName, models.NotFound)

	row := RowFromRecord("fis.jpg", rec)
	assert.Equal(t, models.NotFound, row.CompanyName)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{RowFromRecord("fis.jpg", marketRecord())}

	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Dosya,Kategori,Firma,Tarih,Toplam KDV,Toplam Tutar,Banka", lines[0])
	assert.Contains(t, lines[1], "fis.jpg")
	assert.Contains(t, lines[1], "MİGROS TİCARET")
	assert.Contains(t, lines[1], `"12,00"`)
}
