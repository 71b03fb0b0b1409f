// Command c4ctexts reads ticket texts from a C4C tenant on the command line
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"c4ctexts/internal/cli"
	"c4ctexts/internal/platform/config"
	"c4ctexts/internal/platform/logger"
)

func main() {
	config.LoadDotEnv()
	logger.Init(logger.FromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRoot(config.New()).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
