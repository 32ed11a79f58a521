package main

import (
	"context"
	"os"

	"github.com/example/community-records/internal/cli"
	"github.com/example/community-records/internal/config"
	"github.com/example/community-records/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, nil).Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	ctx := logging.ContextWithLogger(context.Background(), logger)

	root := cli.NewRootCommand(cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
