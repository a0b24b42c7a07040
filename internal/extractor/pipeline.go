// Package extractor turns recognized receipt text into a structured record.
// It composes the category classifier, the pattern matcher, the company name
// heuristic and the line item segmenter; nothing here performs I/O.
package extractor

import (
	"github.com/semreerol/Receipt-Scanner/internal/classifier"
	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/models"
)

// Pipeline orchestrates one classify-then-extract pass per document. It is
// stateless across invocations and safe for concurrent use: the classifier
// lexicon and the compiled pattern sets are shared read-only.
type Pipeline struct {
	classifier *classifier.Classifier
	logger     logging.Logger
}

// NewPipeline creates a Pipeline around the given classifier.
func NewPipeline(c *classifier.Classifier, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Pipeline{classifier: c, logger: logger}
}

// Process classifies the recognized text, runs the matching extractor variant
// and returns the record with every missing field normalized to the
// "Bulunamadı" sentinel. Unclassifiable documents get a minimal record with
// the raw text; no structured extraction is attempted for them.
func (p *Pipeline) Process(text string) *models.ReceiptRecord {
	doc := models.NewRecognizedDocument(text)
	category := p.classifier.Classify(doc.Text)
	p.logger.Debug("receipt classified",
		logging.Field{Key: logging.FieldCategory, Value: string(category)},
	)

	var rec *models.ReceiptRecord
	switch category {
	case models.CategoryFuel:
		rec = extractFuel(doc)
	case models.CategoryMarket:
		rec = extractMarket(doc)
	case models.CategoryFood:
		rec = extractFood(doc)
	default:
		rec = &models.ReceiptRecord{}
		rec.Set(models.FieldCategory, string(models.CategoryOther))
		rec.Set(models.FieldRawText, doc.Text)
	}

	rec.FillMissing(models.NotFound)
	return rec
}
