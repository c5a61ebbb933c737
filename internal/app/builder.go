// internal/app/builder.go
package app

import (
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/tamzrod/slide-remote/internal/config"
	"github.com/tamzrod/slide-remote/internal/display"
	"github.com/tamzrod/slide-remote/internal/heartbeat"
	"github.com/tamzrod/slide-remote/internal/input"
	inmodbus "github.com/tamzrod/slide-remote/internal/input/modbus"
	"github.com/tamzrod/slide-remote/internal/link"
	"github.com/tamzrod/slide-remote/internal/msg"
	"github.com/tamzrod/slide-remote/internal/networker"
	"github.com/tamzrod/slide-remote/internal/presenter"
	"github.com/tamzrod/slide-remote/internal/queue"
	"github.com/tamzrod/slide-remote/internal/render"
	"github.com/tamzrod/slide-remote/internal/sim"
)

// Build wires every role from a validated, normalized config.
// The returned closer releases hardware connections.
func Build(cfg *config.Config, clk clock.Clock) (*Remote, func() error, error) {
	if clk == nil {
		clk = clock.New()
	}
	t := cfg.Timing

	r := &Remote{
		cfg:     cfg,
		cmds:    queue.New[msg.Command](t.CommandQueue),
		ui:      queue.New[msg.UI](t.UIQueue),
		counter: &heartbeat.Counter{},
	}
	closer := func() error { return nil }

	// ---- panel ----
	switch cfg.Display.Driver {
	case config.DisplayHeadless:
		r.memory = display.NewMemory(cfg.Display.Width, cfg.Display.Height)
		r.panel = r.memory
	default:
		r.terminal = sim.NewTerminal(cfg.Display.Width, cfg.Display.Height, cfg.Display.Scale, 0)
		r.panel = r.terminal
	}

	// ---- controls ----
	var controls input.Controls = input.NoControls{}
	switch cfg.Input.Driver {
	case config.InputTerminal:
		controls = r.terminal
	case config.InputModbus:
		m := cfg.Input.Modbus
		c, err := inmodbus.Dial(inmodbus.Config{
			Transport: m.Transport,
			Endpoint:  m.Endpoint,
			Device:    m.Device,
			BaudRate:  m.BaudRate,
			UnitID:    m.UnitID,
			Address:   m.Address,
			Timeout:   config.Ms(m.TimeoutMs),
			Sample:    config.Ms(m.SampleMs),
			LongPress: config.Ms(m.LongPressMs),
		})
		if err != nil {
			return nil, nil, err
		}
		r.buttons = c
		controls = c
		closer = c.Close
	}

	fail := func(err error) (*Remote, func() error, error) {
		closer()
		return nil, nil, err
	}

	// ---- link + presenter ----
	r.radio = link.NewHostRadio(cfg.Server.Addr(), config.Ms(t.WifiCheckMs), clk)
	mgr, err := link.NewManager(link.Config{
		SSID:        cfg.Network.SSID,
		Password:    cfg.Network.Password,
		MaxWaits:    t.LinkWaits,
		WaitStep:    config.Ms(t.LinkWaitStepMs),
		Cooldown:    config.Ms(t.LinkCooldownMs),
		MaxCooldown: config.Ms(t.LinkMaxCooldownMs),
	}, r.radio, clk)
	if err != nil {
		return fail(fmt.Errorf("build link: %w", err))
	}

	pres, err := presenter.New(presenter.Config{
		BaseURL: cfg.Server.BaseURL(),
		Timeout: config.Ms(cfg.Server.TimeoutMs),
	})
	if err != nil {
		return fail(fmt.Errorf("build presenter: %w", err))
	}

	// ---- workers ----
	r.sampler, err = input.NewSampler(input.Config{
		Interval:          config.Ms(t.InputMs),
		WifiCheckInterval: config.Ms(t.WifiCheckMs),
	}, controls, r.radio, clk, r.cmds, r.ui)
	if err != nil {
		return fail(fmt.Errorf("build sampler: %w", err))
	}

	r.network, err = networker.New(networker.Config{
		PollInterval:    config.Ms(t.PollMs),
		ForcedPollDelay: config.Ms(t.ForcedPollDelayMs),
		RetryDelay:      config.Ms(t.RetryDelayMs),
		Yield:           config.Ms(t.NetYieldMs),
		MaxDrain:        t.MaxDrain,
	}, pres, mgr, clk, r.cmds, r.ui)
	if err != nil {
		return fail(fmt.Errorf("build network worker: %w", err))
	}

	fonts, err := render.LoadFonts()
	if err != nil {
		return fail(err)
	}
	r.render, err = render.New(render.Config{
		UITick: config.Ms(t.UITickMs),
		Marquee: render.MarqueeConfig{
			Pause:  config.Ms(t.MarqueePauseMs),
			Period: config.Ms(t.MarqueePeriodMs),
			Step:   t.MarqueeStepPx,
			Spacer: t.MarqueeSpacerPx,
		},
		Geometry: render.DefaultGeometry,
	}, r.panel, fonts, clk, r.ui, r.counter)
	if err != nil {
		return fail(fmt.Errorf("build render worker: %w", err))
	}

	r.beat, err = heartbeat.NewTicker(config.Ms(t.HeartbeatMs), r.counter, clk)
	if err != nil {
		return fail(fmt.Errorf("build heartbeat: %w", err))
	}

	return r, closer, nil
}
