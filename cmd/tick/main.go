package main

import (
	"os"

	"github.com/lucvt/tick/internal/cli"
	"github.com/lucvt/tick/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
