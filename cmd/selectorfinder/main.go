// cmd/selectorfinder/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/law-makers/selectorfinder/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup signal handling for graceful shutdown. The first signal cancels
	// the running analysis so its browser is released; a second one exits.
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Interrupt received, shutting down gracefully...")
		cancel()
		<-sigCh
		os.Exit(130)
	}()

	code := cli.Execute(ctx)
	cancel()
	os.Exit(code)
}
