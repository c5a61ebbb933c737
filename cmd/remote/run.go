// cmd/remote/run.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"tractor.dev/toolkit-go/engine/cli"

	"github.com/tamzrod/slide-remote/internal/app"
	"github.com/tamzrod/slide-remote/internal/config"
	"github.com/tamzrod/slide-remote/internal/logging"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Usage: "run <config.yaml>",
		Short: "run the remote",
		Args:  cli.MinArgs(1),
		Run: func(ctx *cli.Context, args []string) {
			cfg := loadConfig(args[0])

			// The terminal panel owns the screen; keep logs off it.
			quiet := cfg.Display.Driver == config.DisplayTerminal
			cleanup, err := logging.Setup(cfg.Log.Level, cfg.Log.File, quiet)
			if err != nil {
				log.Fatalf("logging setup failed: %v", err)
			}
			defer cleanup()

			remote, closeRemote, err := app.Build(cfg, nil)
			if err != nil {
				log.Fatalf("build failed: %v", err)
			}
			defer closeRemote()

			runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := remote.Run(runCtx); err != nil {
				log.Errorf("remote stopped: %v", err)
			}
		},
	}
}

// loadConfig runs Load, Validate and Normalize, exiting on failure.
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)
	return cfg
}
