// Package root contains the root command for the application.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semreerol/Receipt-Scanner/internal/classifier"
	"github.com/semreerol/Receipt-Scanner/internal/config"
	"github.com/semreerol/Receipt-Scanner/internal/extractor"
	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/ocr"
	"github.com/semreerol/Receipt-Scanner/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands. It is replaced with the
	// configured adapter in PersistentPreRun.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration, available to subcommands
	// after PersistentPreRun.
	Cfg *config.Config

	// SharedFlags holds common flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "receipt-scanner",
		Short: "A tool to classify Turkish receipts and extract their fields via OCR.",
		Long: `receipt-scanner runs OCR on scanned Turkish receipts, classifies each one
as a fuel, market or food receipt, and extracts the structured fields for
that category (date, totals, line items, bank and more).`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to receipt-scanner!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
				os.Exit(1)
			}
			Cfg = cfg
			Log = cfg.NewLogger()
		},
	}
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// NewPipeline builds the extraction pipeline with the configured keyword
// lexicon. A missing lexicon file falls back to the built-in defaults.
func NewPipeline() *extractor.Pipeline {
	lexiconStore := store.NewLexiconStore(Cfg.Lexicon.File, Log)
	lexicon, err := lexiconStore.Load()
	if err != nil {
		Log.WithError(err).Warn("failed to load lexicon file, using defaults")
		lexicon = classifier.DefaultLexicon()
	}
	return extractor.NewPipeline(classifier.New(lexicon, Log), Log)
}

// NewEngine builds the OCR engine from the loaded configuration.
func NewEngine() *ocr.Engine {
	return ocr.NewEngine(Cfg.OCRConfig(), Log)
}
