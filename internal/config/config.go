// Package config provides Viper-based hierarchical configuration management.
// Precedence, lowest to highest: built-in defaults, an optional config.yaml,
// RECEIPT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/ocr"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Addr        string `mapstructure:"addr" yaml:"addr"`
		MaxUploadMB int64  `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	} `mapstructure:"server" yaml:"server"`

	OCR struct {
		Tesseract string `mapstructure:"tesseract" yaml:"tesseract"`
		Pdftoppm  string `mapstructure:"pdftoppm" yaml:"pdftoppm"`
		Language  string `mapstructure:"language" yaml:"language"`
		DPI       int    `mapstructure:"dpi" yaml:"dpi"`
	} `mapstructure:"ocr" yaml:"ocr"`

	Lexicon struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"lexicon" yaml:"lexicon"`
}

// InitializeConfig loads the configuration with hierarchical precedence.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.receipt-scanner")
	v.AddConfigPath(".receipt-scanner")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RECEIPT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// no config file is fine, defaults and env vars carry the day
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_upload_mb", 10)

	v.SetDefault("ocr.tesseract", "tesseract")
	v.SetDefault("ocr.pdftoppm", "pdftoppm")
	v.SetDefault("ocr.language", "tur")
	v.SetDefault("ocr.dpi", 300)

	v.SetDefault("lexicon.file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Server.MaxUploadMB < 1 || config.Server.MaxUploadMB > 100 {
		return fmt.Errorf("server.max_upload_mb must be between 1 and 100, got: %d", config.Server.MaxUploadMB)
	}

	if config.OCR.DPI < 72 || config.OCR.DPI > 1200 {
		return fmt.Errorf("ocr.dpi must be between 72 and 1200, got: %d", config.OCR.DPI)
	}

	return nil
}

// OCRConfig maps the loaded configuration onto the OCR engine settings.
func (c *Config) OCRConfig() ocr.Config {
	return ocr.Config{
		Tesseract: c.OCR.Tesseract,
		Pdftoppm:  c.OCR.Pdftoppm,
		Language:  c.OCR.Language,
		DPI:       c.OCR.DPI,
	}
}

// NewLogger builds the application logger from the Log section.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
