// Package scan handles single receipt processing from the command line.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/semreerol/Receipt-Scanner/cmd/root"
	"github.com/semreerol/Receipt-Scanner/internal/export"
	"github.com/semreerol/Receipt-Scanner/internal/fileutils"
	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/models"
)

var csvOut string

// Cmd represents the scan command.
var Cmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Run OCR on one receipt and print the extracted record",
	Long: `Scan runs OCR on a single receipt image or PDF, classifies it and prints
the recognized text followed by the extracted record.

The receipt can be given as a positional argument or with -i. Without a file
the command prints a notice and exits without error, so it is safe to wire
into scripts that may have nothing to process. With -o the record is written
as JSON; --csv appends a one-row CSV summary instead of the console box.

Example:
  receipt-scanner scan fis.jpg
  receipt-scanner scan -i fis.pdf -o fis.json
  receipt-scanner scan fis.jpg --csv ozet.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  scanFunc,
}

func init() {
	Cmd.Flags().StringVar(&csvOut, "csv", "", "Write a one-row CSV summary to this file")
}

func scanFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		fmt.Println("Hiçbir dosya seçilmedi. Program sonlandırılıyor.")
		return
	}

	if err := fileutils.ValidateReceiptFile(input); err != nil {
		root.Log.Fatal(err.Error(), logging.Field{Key: logging.FieldFile, Value: input})
	}

	engine := root.NewEngine()
	if err := engine.Available(); err != nil {
		root.Log.Fatal("OCR engine unavailable, install tesseract and the tur language pack",
			logging.Field{Key: "error", Value: err.Error()})
	}

	fmt.Printf("Seçilen dosya: %s\n", input)
	doc, err := engine.Recognize(context.Background(), input)
	if err != nil {
		root.Log.WithError(err).Fatal("recognition failed",
			logging.Field{Key: logging.FieldFile, Value: input})
	}
	if doc.Text == "" {
		root.Log.Fatal("no recognizable text in receipt",
			logging.Field{Key: logging.FieldFile, Value: input})
	}

	fmt.Println("\n--- TANINAN HAM METİN ---")
	fmt.Println(doc.Text)
	fmt.Println("-------------------------")

	rec := root.NewPipeline().Process(doc.Text)

	if output := root.SharedFlags.Output; output != "" {
		writeJSONFile(output, rec)
		return
	}
	if csvOut != "" {
		rows := []export.Row{export.RowFromRecord(filepath.Base(input), rec)}
		if err := export.WriteCSVFile(csvOut, rows); err != nil {
			root.Log.WithError(err).Fatal("failed to write CSV summary")
		}
		root.Log.Info("summary written", logging.Field{Key: logging.FieldFile, Value: csvOut})
		return
	}

	printRecord(rec)
}

func printRecord(rec *models.ReceiptRecord) {
	category, _ := rec.Get(models.FieldCategory)

	fmt.Println("\n************************************")
	fmt.Printf("*** %s ***\n", category)
	fmt.Println("************************************")
	for _, field := range rec.Fields() {
		fmt.Printf("- %s: %s\n", field.Key, field.Value)
	}
	fmt.Println("************************************")
}

func writeJSONFile(path string, rec *models.ReceiptRecord) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		root.Log.WithError(err).Fatal("failed to encode record")
	}
	if err := os.WriteFile(path, append(out, '\n'), 0600); err != nil {
		root.Log.WithError(err).Fatal("failed to write output file",
			logging.Field{Key: logging.FieldFile, Value: path})
	}
	root.Log.Info("record written", logging.Field{Key: logging.FieldFile, Value: path})
}
