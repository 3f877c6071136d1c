// Package root contains the root command and the wiring shared by all
// subcommands.
package root

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"finmate/statements/internal/classifier"
	"finmate/statements/internal/config"
	"finmate/statements/internal/export"
	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
	"finmate/statements/internal/pdfparser"
	"finmate/statements/internal/statement"
	"finmate/statements/internal/store"
	"finmate/statements/internal/tableparser"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input   string
	Output  string
	Summary string
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewNopLogger()

	// Cfg is the loaded application configuration, set by PersistentPreRunE.
	Cfg *config.Config

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statements",
		Short: "Parse bank statements and categorize transactions into a ledger.",
		Long: `statements parses bank statement files (CSV, Excel, PDF) into canonical
transaction records, assigns each a spending category, and exports ledger
and summary CSVs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.Initialize()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
		SilenceUsage: true,
	}
)

var initOnce sync.Once

// Init registers persistent flags on the root command. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	})
}

// LoadRules loads the category rule table from the configured file, falling
// back to the compiled-in defaults.
func LoadRules() ([]models.CategoryRule, error) {
	categoryStore := store.NewCategoryStore(Cfg.Categories.File, Log)
	return categoryStore.LoadRules()
}

// NewStatementParser builds the multi-format statement parser.
func NewStatementParser() *statement.Parser {
	table := tableparser.NewParser(nil, Log)
	pdf := pdfparser.NewParser(pdfparser.NewPDFTextExtractor(), Log)
	return statement.NewParser(table, pdf, Log)
}

// NewClassifier builds the tiered classifier from the configuration: keyword
// rules, the persisted clustering fallback, and the AI tier when enabled.
func NewClassifier(ctx context.Context, rules []models.CategoryRule) (*classifier.Classifier, error) {
	modelStore := store.NewFileModelStore(Cfg.Model.Path, Log)
	fallback := classifier.NewClusterFallback(modelStore, models.CategoryNames(rules), Log)

	opts := []classifier.Option{classifier.WithFallback(fallback)}
	if Cfg.AI.Enabled {
		client, err := classifier.NewGeminiClient(ctx, Cfg.AI.APIKey, Cfg.AI.Model, Log)
		if err != nil {
			return nil, fmt.Errorf("initializing AI tier: %w", err)
		}
		ai := classifier.NewAIStrategy(client, models.CategoryNames(rules), Log)
		opts = append(opts, classifier.WithAIStrategy(ai))
	}

	return classifier.New(rules, Log, opts...), nil
}

// NewExportWriter builds the CSV export writer with the configured delimiter.
func NewExportWriter() *export.Writer {
	return export.NewWriter(Cfg.Delimiter(), Log)
}
