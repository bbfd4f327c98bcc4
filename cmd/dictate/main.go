package main

import (
	"fmt"
	"os"

	"github.com/marcandre259/dictate/config"
	"github.com/marcandre259/dictate/internal/app"
	"github.com/marcandre259/dictate/internal/cli"
	"github.com/marcandre259/dictate/internal/logging"
	"github.com/marcandre259/dictate/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.LogDir)

	deps := &cli.Dependencies{
		App:    app.New(cfg, logger),
		Config: cfg,
		Logger: logger,
	}

	return cli.NewRootCmd(deps).Execute()
}
