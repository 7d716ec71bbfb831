package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/lexicon"
	"github.com/pthm/readcheck/internal/logging"
	"github.com/pthm/readcheck/internal/report"
	"github.com/pthm/readcheck/internal/reporter"
	"github.com/pthm/readcheck/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
	lexiconDir string
	logLevel   string
)

// Resolved by setup before any subcommand runs
var (
	cfg    = config.Defaults()
	logger = zerolog.Nop()
	appUI  *ui.UI
)

// RootCmd is the readcheck command
var RootCmd = &cobra.Command{
	Use:   "readcheck",
	Short: "Readability checks for audit observations and other prose",
	Long: `readcheck scores the readability of short texts such as audit
observations.

Each text gets an EFLAW score, a Gunning-Fog grade level, sentence length
statistics, a sentiment and objectivity estimate, and checklists of jargon
and words that could be simpler.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: discovered "+config.FileName+")")
	RootCmd.PersistentFlags().StringVar(&lexiconDir, "lexicon-dir", "", "Directory holding the lexicon CSV files")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
}

// setup resolves configuration, logging and output for the invoked command
func setup(cmd *cobra.Command, args []string) error {
	if format != "terminal" && format != "json" {
		return fmt.Errorf("unknown format %q (want terminal or json)", format)
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	c, path, err := config.Resolve(dir, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags take precedence over file and environment
	if cmd.Flags().Changed("lexicon-dir") {
		c.Lexicon.Dir = lexiconDir
	}
	switch {
	case cmd.Flags().Changed("log-level"):
		c.Log.Level = logLevel
	case verbose:
		c.Log.Level = "debug"
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.New(os.Stderr, c.Log.Level, c.Log.Format)
	if err != nil {
		return err
	}

	cfg = c
	logger = log
	appUI = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)

	if path != "" {
		logger.Debug().Str("path", path).Msg("loaded config")
	}
	return nil
}

// GetUI returns the UI for the running command
func GetUI() *ui.UI {
	if appUI == nil {
		appUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return appUI
}

// loadLexicon loads the configured lexicon, falling back to the embedded lists
func loadLexicon() (*lexicon.Lexicon, error) {
	var (
		lex    *lexicon.Lexicon
		err    error
		source = "embedded"
	)
	if cfg.Lexicon.Dir != "" {
		source = cfg.Lexicon.Dir
		lex, err = lexicon.LoadDir(cfg.Lexicon.Dir)
	} else {
		lex, err = lexicon.Default()
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", source).
		Int("jargon", lex.Jargon.Len()).
		Int("simpleWords", lex.SimpleWords.Len()).
		Int("ignorable", lex.IgnorableDifficult.Len()).
		Msg("loaded lexicon")
	return lex, nil
}

// newAnalyzer builds an analyzer over the configured lexicon and thresholds
func newAnalyzer() (*report.Analyzer, error) {
	lex, err := loadLexicon()
	if err != nil {
		return nil, err
	}
	return report.NewAnalyzer(lex, cfg.Thresholds, report.WithLogger(logger))
}

// reportWriter returns the readability report output for the --format flag
func reportWriter(w io.Writer) reporter.ReportWriter {
	if format == "json" {
		return reporter.NewJSONReporter(w)
	}
	return reporter.NewReadabilityReporter(w, GetUI(), cfg.Thresholds)
}
