package main

import (
	"os"

	"finmate/statements/cmd/classify"
	"finmate/statements/cmd/parse"
	"finmate/statements/cmd/root"
	"finmate/statements/cmd/train"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(train.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
