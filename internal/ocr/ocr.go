// Package ocr wraps the external tesseract and pdftoppm commands behind a
// small engine that turns receipt images or PDFs into recognized text.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/models"
	"github.com/semreerol/Receipt-Scanner/internal/parsererror"
)

// Config holds the external command settings for the engine.
type Config struct {
	// Tesseract is the tesseract binary name or path.
	Tesseract string
	// Pdftoppm is the pdftoppm binary name or path, used to rasterize PDFs.
	Pdftoppm string
	// Language is the tesseract language pack, "tur" for Turkish receipts.
	Language string
	// DPI is the rasterization resolution for PDF input.
	DPI int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Tesseract: "tesseract",
		Pdftoppm:  "pdftoppm",
		Language:  "tur",
		DPI:       300,
	}
}

// Engine runs OCR on receipt files. It shells out to tesseract (and pdftoppm
// for PDF input) through a Runner so tests can substitute canned output.
type Engine struct {
	cfg    Config
	runner Runner
	logger logging.Logger
}

// NewEngine creates an Engine with the given configuration. A nil logger is
// replaced with a no-op one.
func NewEngine(cfg Config, logger logging.Logger) *Engine {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Language == "" {
		cfg.Language = "tur"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Engine{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// NewEngineWithRunner is the test constructor.
func NewEngineWithRunner(cfg Config, runner Runner, logger logging.Logger) *Engine {
	e := NewEngine(cfg, logger)
	e.runner = runner
	return e
}

// Available reports whether the OCR commands can be found on PATH. The caller
// decides how to degrade; the engine itself stays usable so a later install
// is picked up without a restart.
func (e *Engine) Available() error {
	if _, err := exec.LookPath(e.cfg.Tesseract); err != nil {
		return &parsererror.OCRUnavailableError{Reason: "tesseract not found", Err: err}
	}
	return nil
}

// Recognize runs OCR on the file at path and returns the recognized document.
// PDF files are rasterized to an image first. The returned document may be
// empty when the page contains no recognizable text.
func (e *Engine) Recognize(ctx context.Context, path string) (models.RecognizedDocument, error) {
	imagePath := path
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		converted, cleanup, err := e.rasterize(ctx, path)
		if err != nil {
			return models.RecognizedDocument{}, err
		}
		defer cleanup()
		imagePath = converted
	}

	// "stdout" as the output base makes tesseract write to standard output;
	// the alto config selects ALTO XML so line structure survives.
	stdout, stderr, err := e.runner.Run(ctx, e.cfg.Tesseract,
		imagePath, "stdout", "-l", e.cfg.Language, "alto")
	if err != nil {
		if isCommandMissing(err) {
			return models.RecognizedDocument{}, &parsererror.OCRUnavailableError{Reason: "tesseract not found", Err: err}
		}
		return models.RecognizedDocument{}, fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(string(stderr)))
	}

	lines, err := ParseALTO(bytes.NewReader(stdout))
	if err != nil {
		return models.RecognizedDocument{}, err
	}

	doc := models.NewRecognizedDocument(strings.Join(lines, "\n"))
	e.logger.Debug("recognized document",
		logging.Field{Key: logging.FieldFile, Value: filepath.Base(path)},
		logging.Field{Key: logging.FieldCount, Value: len(doc.Lines)},
	)
	return doc, nil
}

// RecognizeBytes writes the upload to a temporary file and runs Recognize on
// it. ext must carry the original extension so PDF input is detected.
func (e *Engine) RecognizeBytes(ctx context.Context, data []byte, ext string) (models.RecognizedDocument, error) {
	if len(data) == 0 {
		return models.RecognizedDocument{}, &parsererror.EmptyInputError{Source: "upload"}
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	tmp, err := os.CreateTemp("", "receipt-*"+ext)
	if err != nil {
		return models.RecognizedDocument{}, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return models.RecognizedDocument{}, fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return models.RecognizedDocument{}, fmt.Errorf("failed to close temporary file: %w", err)
	}

	return e.Recognize(ctx, tmp.Name())
}

// rasterize converts the first page of a PDF into a PNG next to a temporary
// prefix and returns the image path plus a cleanup func.
func (e *Engine) rasterize(ctx context.Context, path string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "receipt-pdf-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	prefix := filepath.Join(dir, "page")
	_, stderr, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-png", "-r", strconv.Itoa(e.cfg.DPI), "-f", "1", "-l", "1",
		path, prefix)
	if err != nil {
		cleanup()
		if isCommandMissing(err) {
			return "", nil, &parsererror.OCRUnavailableError{Reason: "pdftoppm not found", Err: err}
		}
		return "", nil, fmt.Errorf("pdftoppm failed: %w: %s", err, strings.TrimSpace(string(stderr)))
	}

	// pdftoppm names single-page output either page-1.png or page-01.png
	// depending on version.
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(matches) == 0 {
		cleanup()
		return "", nil, fmt.Errorf("pdftoppm produced no image for %s", filepath.Base(path))
	}
	return matches[0], cleanup, nil
}

func isCommandMissing(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound)
}
