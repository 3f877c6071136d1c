// Package train implements explicit retraining of the clustering model.
package train

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"finmate/statements/cmd/root"
	"finmate/statements/internal/classifier"
	"finmate/statements/internal/logging"
	"finmate/statements/internal/models"
	"finmate/statements/internal/store"
)

var reset bool

// Cmd represents the train command.
var Cmd = &cobra.Command{
	Use:   "train",
	Short: "Train the clustering fallback model from a statement file",
	Long: `Train the clustering model used when no keyword rule matches, replacing
any previously persisted model. With --reset the stored model is deleted
instead; the next classification run retrains from its own batch.`,
	RunE: trainFunc,
}

func init() {
	Cmd.Flags().BoolVar(&reset, "reset", false, "Delete the stored model instead of training")
}

func trainFunc(cmd *cobra.Command, args []string) error {
	modelStore := store.NewFileModelStore(root.Cfg.Model.Path, root.Log)

	if reset {
		if err := modelStore.Reset(); err != nil {
			return fmt.Errorf("resetting model: %w", err)
		}
		root.Log.WithField(logging.FieldFile, root.Cfg.Model.Path).Info("Deleted stored model")
		return nil
	}

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

	descriptions := make([]string, len(records))
	for i, record := range records {
		descriptions[i] = record.Description
	}

	fallback := classifier.NewClusterFallback(modelStore, models.CategoryNames(rules), root.Log)
	if err := fallback.Train(descriptions); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: root.Cfg.Model.Path},
		logging.Field{Key: logging.FieldCount, Value: len(descriptions)},
	).Info("Trained clustering model")
	return nil
}
