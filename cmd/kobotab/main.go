package main

import (
	"os"

	"github.com/kobotools/kobotab/internal/pkg/cli"
)

func main() {
	cmd := cli.NewRootCommand(os.Stdout, os.Stderr)
	os.Exit(cmd.Execute())
}
