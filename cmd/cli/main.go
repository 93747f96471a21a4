package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/report-atlas/pkg/runtime/terminal"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
		Logger: &logger,
	})

	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
