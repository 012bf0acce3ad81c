package main

import (
	"os"

	"github.com/henri123lemoine/promptkit/internal/cli"
)

func main() {
	err := cli.Execute()
	cli.Report(err)
	os.Exit(cli.ExitCode(err))
}
