// Package store loads the category keyword lexicon from a YAML file, letting
// deployments extend the rule set without a rebuild.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/semreerol/Receipt-Scanner/internal/classifier"
	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/models"

	"gopkg.in/yaml.v3"
)

// LexiconStore resolves and reads the lexicon configuration file.
type LexiconStore struct {
	File   string
	logger logging.Logger
}

// NewLexiconStore creates a store for the given file path. An empty path
// means "lexicon.yaml" resolved against the standard locations.
func NewLexiconStore(file string, logger logging.Logger) *LexiconStore {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &LexiconStore{File: file, logger: logger}
}

type lexiconFile struct {
	Categories []categoryConfig `yaml:"categories"`
}

type categoryConfig struct {
	Name     string               `yaml:"name"`
	Keywords []classifier.Keyword `yaml:"keywords"`
}

// Load reads the lexicon file. A missing file is not an error: the built-in
// default lexicon is returned so the scanner works out of the box.
func (s *LexiconStore) Load() (classifier.Lexicon, error) {
	filename := s.File
	if filename == "" {
		filename = "lexicon.yaml"
	}

	path, err := s.findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).Debug("lexicon file not found, using built-in lexicon")
			return classifier.DefaultLexicon(), nil
		}
		return nil, fmt.Errorf("error resolving lexicon file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	var parsed lexiconFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing lexicon file: %w", err)
	}

	lexicon := make(classifier.Lexicon, len(parsed.Categories))
	for _, cat := range parsed.Categories {
		category := models.Category(cat.Name)
		if !isScoredCategory(category) {
			s.logger.WithField(logging.FieldCategory, cat.Name).Warn("ignoring unknown lexicon category")
			continue
		}
		lexicon[category] = cat.Keywords
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(lexicon)},
	).Debug("loaded lexicon")
	return lexicon, nil
}

func isScoredCategory(category models.Category) bool {
	for _, c := range models.ScoredCategories {
		if c == category {
			return true
		}
	}
	return false
}

// findConfigFile looks for the lexicon file in standard locations.
func (s *LexiconStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "receipt-scanner", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
