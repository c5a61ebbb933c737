// cmd/remote/check.go
package main

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"tractor.dev/toolkit-go/engine/cli"

	"github.com/tamzrod/slide-remote/internal/config"
	"github.com/tamzrod/slide-remote/internal/link"
	"github.com/tamzrod/slide-remote/internal/presenter"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Usage: "check <config.yaml>",
		Short: "validate config and query the presentation server once",
		Args:  cli.MinArgs(1),
		Run: func(ctx *cli.Context, args []string) {
			cfg := loadConfig(args[0])
			t := cfg.Timing

			radio := link.NewHostRadio(cfg.Server.Addr(), config.Ms(t.WifiCheckMs), clock.New())
			mgr, err := link.NewManager(link.Config{
				SSID:        cfg.Network.SSID,
				Password:    cfg.Network.Password,
				MaxWaits:    t.LinkWaits,
				WaitStep:    config.Ms(t.LinkWaitStepMs),
				Cooldown:    config.Ms(t.LinkCooldownMs),
				MaxCooldown: config.Ms(t.LinkMaxCooldownMs),
			}, radio, clock.New())
			if err != nil {
				log.Fatal(err)
			}

			client, err := presenter.New(presenter.Config{
				BaseURL: cfg.Server.BaseURL(),
				Timeout: config.Ms(cfg.Server.TimeoutMs),
			})
			if err != nil {
				log.Fatal(err)
			}

			bg := context.Background()
			fmt.Printf("config:  ok (%s)\n", args[0])

			if !mgr.Ensure(bg) {
				fmt.Printf("link:    down (%s)\n", mgr.State())
				return
			}
			fmt.Printf("link:    up (%s)\n", cfg.Server.Addr())

			slide, err := client.SlideIndex(bg)
			if err != nil {
				fmt.Printf("server:  unreachable (%v)\n", err)
				return
			}
			fmt.Printf("server:  slide %d %q\n", slide.Index+1, slide.Name)
		},
	}
}
