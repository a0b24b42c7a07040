package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(10), cfg.Server.MaxUploadMB)
	assert.Equal(t, "tesseract", cfg.OCR.Tesseract)
	assert.Equal(t, "tur", cfg.OCR.Language)
	assert.Equal(t, 300, cfg.OCR.DPI)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("RECEIPT_SERVER_ADDR", ":9090")
	t.Setenv("RECEIPT_OCR_LANGUAGE", "tur+eng")
	t.Setenv("RECEIPT_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "tur+eng", cfg.OCR.Language)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitializeConfigInvalidLogLevel(t *testing.T) {
	t.Setenv("RECEIPT_LOG_LEVEL", "bogus")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfigInvalidUploadLimit(t *testing.T) {
	t.Setenv("RECEIPT_SERVER_MAX_UPLOAD_MB", "0")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestOCRConfigMapping(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	ocrCfg := cfg.OCRConfig()
	assert.Equal(t, "tesseract", ocrCfg.Tesseract)
	assert.Equal(t, "pdftoppm", ocrCfg.Pdftoppm)
	assert.Equal(t, 300, ocrCfg.DPI)
}
