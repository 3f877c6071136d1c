// Package parse implements the statement parsing command.
package parse

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"finmate/statements/cmd/root"
	"finmate/statements/internal/logging"
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a bank statement file into transaction records",
	Long: `Parse a bank statement file (CSV, XLS, XLSX or PDF) into canonical
transaction records and write them as CSV. Without --output the records are
written to stdout.`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
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

	root.Log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: input},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Parsed statement")

	writer := root.NewExportWriter()
	if root.SharedFlags.Output == "" {
		return writer.WriteRecords(cmd.OutOrStdout(), records)
	}
	return writer.WriteRecordsFile(root.SharedFlags.Output, records)
}
