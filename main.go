package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gaze-network/nft-launchpad/cmd"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		if msg, ok := errs.PublicMessage(err); ok {
			logger.ErrorContext(ctx, msg, err)
		} else {
			logger.ErrorContext(ctx, "Failed to execute command", err)
		}
		stop()
		os.Exit(1)
	}
}
