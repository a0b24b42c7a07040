// Package classifier assigns a receipt category by scoring the recognized
// text against weighted keyword lexicons. The rule set is data, not code, so
// categories can be extended without touching the scoring algorithm.
package classifier

import (
	"strings"

	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/models"
)

// Classifier scores whole-document text against the lexicon and picks the
// top category. It holds no mutable state; Classify is safe for concurrent
// use and deterministic for identical input.
type Classifier struct {
	lexicon Lexicon
	logger  logging.Logger
}

// New creates a Classifier. A nil lexicon falls back to the built-in rule set.
func New(lexicon Lexicon, logger logging.Logger) *Classifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Classifier{lexicon: lexicon, logger: logger}
}

// Classify returns the category whose lexicon scores highest against the
// text. Each keyword counts once regardless of how often it occurs. When
// every score is zero the document is CategoryOther. Ties resolve to the
// category listed first in models.ScoredCategories.
func (c *Classifier) Classify(text string) models.Category {
	upper := strings.ToUpper(text)

	scores := make(map[models.Category]int, len(models.ScoredCategories))
	for _, category := range models.ScoredCategories {
		for _, kw := range c.lexicon[category] {
			if strings.Contains(upper, strings.ToUpper(kw.Word)) {
				scores[category] += kw.Weight
				c.logger.Debug("keyword matched",
					logging.Field{Key: logging.FieldKeyword, Value: kw.Word},
					logging.Field{Key: logging.FieldCategory, Value: string(category)},
					logging.Field{Key: logging.FieldScore, Value: kw.Weight},
				)
			}
		}
	}

	best := models.CategoryOther
	bestScore := 0
	for _, category := range models.ScoredCategories {
		if scores[category] > bestScore {
			best = category
			bestScore = scores[category]
		}
	}

	c.logger.Debug("category scores computed",
		logging.Field{Key: logging.FieldCategory, Value: string(best)},
		logging.Field{Key: logging.FieldScore, Value: bestScore},
	)
	return best
}
