package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/board/cmd"
	"github.com/thenoetrevino/board/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(ctx)
	cancel()

	// commands report their own failures; anything else came from cobra or startup
	var cmdErr *cli.CommandError
	if err != nil && !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
