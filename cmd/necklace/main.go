// Package main provides the necklace CLI: generate, classify, sample and
// navigate the scale patterns of an octave.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "necklace: %v\n", err)
		os.Exit(1)
	}
}
