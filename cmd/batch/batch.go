// Package batch handles batch processing of receipt directories.
package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/semreerol/Receipt-Scanner/cmd/root"
	"github.com/semreerol/Receipt-Scanner/internal/export"
	"github.com/semreerol/Receipt-Scanner/internal/fileutils"
	"github.com/semreerol/Receipt-Scanner/internal/logging"
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of receipts into a CSV summary",
	Long: `Batch runs OCR and extraction over every supported receipt file in the
input directory and writes one consolidated CSV summary. Files that fail to
process are logged and skipped; the remaining receipts still make it into
the output.

Example:
  receipt-scanner batch -i receipts/ -o summary.csv`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	inputDir := root.SharedFlags.Input
	output := root.SharedFlags.Output

	if inputDir == "" || output == "" {
		root.Log.Fatal("input directory (-i) and output file (-o) must be specified")
	}

	engine := root.NewEngine()
	if err := engine.Available(); err != nil {
		root.Log.Fatal("OCR engine unavailable, install tesseract and the tur language pack",
			logging.Field{Key: "error", Value: err.Error()})
	}
	pipeline := root.NewPipeline()

	files, err := fileutils.ListReceiptFiles(inputDir)
	if err != nil {
		root.Log.WithError(err).Fatal("failed to list input directory")
	}
	if len(files) == 0 {
		root.Log.Warn("no supported receipt files found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inputDir})
		return
	}

	root.Log.Info("found receipts for processing",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	ctx := context.Background()
	rows := make([]export.Row, 0, len(files))
	for _, file := range files {
		doc, err := engine.Recognize(ctx, file)
		if err != nil {
			root.Log.WithError(err).Error("skipping receipt, recognition failed",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}
		if doc.Text == "" {
			root.Log.Warn("skipping receipt, no recognizable text",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}

		rec := pipeline.Process(doc.Text)
		rows = append(rows, export.RowFromRecord(filepath.Base(file), rec))
	}

	if err := export.WriteCSVFile(output, rows); err != nil {
		root.Log.WithError(err).Fatal("failed to write CSV summary")
	}

	root.Log.Info(fmt.Sprintf("Batch processing completed. %d of %d receipts exported.", len(rows), len(files)),
		logging.Field{Key: logging.FieldFile, Value: output})
}
