// Package classify implements the end-to-end parse, categorize and summarize
// command.
package classify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"finmate/statements/cmd/root"
	"finmate/statements/internal/classifier"
	"finmate/statements/internal/logging"
)

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Parse a statement and categorize every transaction",
	Long: `Parse a bank statement file, assign a category to every transaction
(keyword rules first, clustering fallback for the rest) and write the
classified ledger as CSV. With --summary a per-category aggregate CSV is
written as well.`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Summary, "summary", "s", "", "Write per-category summary CSV to this file")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("--input is required")
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	parser := root.NewStatementParser()
	records, err := parser.Parse(data, filepath.Base(input))
	if err != nil {
		return err
	}

	rules, err := root.LoadRules()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	c, err := root.NewClassifier(ctx, rules)
	if err != nil {
		return err
	}

	classified, err := c.Classify(ctx, records)
	if err != nil {
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: input},
		logging.Field{Key: logging.FieldCount, Value: len(classified)},
	).Info("Classified statement")

	writer := root.NewExportWriter()
	if root.SharedFlags.Summary != "" {
		summaries := classifier.Summarize(classified, rules)
		if err := writer.WriteSummariesFile(root.SharedFlags.Summary, summaries); err != nil {
			return err
		}
	}

	if root.SharedFlags.Output == "" {
		return writer.WriteRecords(cmd.OutOrStdout(), classified)
	}
	return writer.WriteRecordsFile(root.SharedFlags.Output, classified)
}
