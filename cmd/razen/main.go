package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/HicaroD/razen/internal/diagnostics"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Diagnostics were already printed.
		if !errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", APP_NAME, err)
		}
		os.Exit(1)
	}
}
