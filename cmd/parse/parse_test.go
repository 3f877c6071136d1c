package parse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finmate/statements/cmd/parse"
	"finmate/statements/cmd/root"
)

// chdir replicates t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestParseCommandMetadata(t *testing.T) {
	assert.Equal(t, "parse", parse.Cmd.Use)
	assert.Contains(t, parse.Cmd.Short, "Parse a bank statement")
	assert.NotNil(t, parse.Cmd.RunE)
}

func TestParseCommandEndToEnd(t *testing.T) {
	chdir(t, t.TempDir())

	input := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"Date,Description,Amount\n03/15/2024,STARBUCKS COFFEE,-4.50\n"), 0600))
	output := filepath.Join(t.TempDir(), "ledger.csv")

	root.Init()
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.SetArgs([]string{"parse", "--input", input, "--output", output})
	require.NoError(t, root.Cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Id,Date,Description,Amount,Category")
	assert.Contains(t, string(data), "2024-03-15,STARBUCKS COFFEE,-4.50")
}

func TestParseCommandMissingInput(t *testing.T) {
	chdir(t, t.TempDir())

	root.Init()
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.SetArgs([]string{"parse"})
	root.SharedFlags.Input = ""
	err := root.Cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input is required")
}
