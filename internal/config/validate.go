// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	// ------------------------------------------------------------
	// PRESENTATION SERVER
	// ------------------------------------------------------------

	if cfg.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	if cfg.Server.TimeoutMs < 0 {
		return errors.New("server.timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// DISPLAY
	// ------------------------------------------------------------

	switch cfg.Display.Driver {
	case "", DisplayTerminal, DisplayHeadless:
	default:
		return fmt.Errorf("display.driver %q unknown (terminal|headless)", cfg.Display.Driver)
	}
	if cfg.Display.Width < 0 || cfg.Display.Height < 0 || cfg.Display.Scale < 0 {
		return errors.New("display dimensions must be >= 0")
	}

	// ------------------------------------------------------------
	// INPUT
	// ------------------------------------------------------------

	switch cfg.Input.Driver {
	case "", InputTerminal, InputNone:
	case InputModbus:
		if err := validateModbus(cfg.Input.Modbus); err != nil {
			return err
		}
	default:
		return fmt.Errorf("input.driver %q unknown (terminal|modbus|none)", cfg.Input.Driver)
	}

	if effective(cfg.Input.Driver, InputTerminal) == InputTerminal &&
		effective(cfg.Display.Driver, DisplayTerminal) != DisplayTerminal {
		return errors.New("input.driver terminal requires display.driver terminal")
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	return validateTiming(cfg.Timing)
}

func validateModbus(m ModbusConfig) error {
	switch m.Transport {
	case "", "tcp":
		if m.Endpoint == "" {
			return errors.New("input.modbus.endpoint is required for tcp")
		}
	case "rtu":
		if m.Device == "" {
			return errors.New("input.modbus.device is required for rtu")
		}
	default:
		return fmt.Errorf("input.modbus.transport %q unknown (tcp|rtu)", m.Transport)
	}

	if m.BaudRate < 0 || m.TimeoutMs < 0 || m.SampleMs < 0 || m.LongPressMs < 0 {
		return errors.New("input.modbus values must be >= 0")
	}
	if uint32(m.Address)+3 > 0x10000 {
		return fmt.Errorf("input.modbus.address %d leaves no room for 3 inputs", m.Address)
	}
	return nil
}

func validateTiming(t TimingConfig) error {
	fields := map[string]int{
		"input_ms":             t.InputMs,
		"wifi_check_ms":        t.WifiCheckMs,
		"net_yield_ms":         t.NetYieldMs,
		"poll_ms":              t.PollMs,
		"forced_poll_delay_ms": t.ForcedPollDelayMs,
		"retry_delay_ms":       t.RetryDelayMs,
		"link_waits":           t.LinkWaits,
		"link_wait_step_ms":    t.LinkWaitStepMs,
		"link_cooldown_ms":     t.LinkCooldownMs,
		"link_max_cooldown_ms": t.LinkMaxCooldownMs,
		"ui_tick_ms":           t.UITickMs,
		"marquee_pause_ms":     t.MarqueePauseMs,
		"marquee_step_px":      t.MarqueeStepPx,
		"marquee_period_ms":    t.MarqueePeriodMs,
		"marquee_spacer_px":    t.MarqueeSpacerPx,
		"heartbeat_ms":         t.HeartbeatMs,
		"max_drain":            t.MaxDrain,
		"command_queue":        t.CommandQueue,
		"ui_queue":             t.UIQueue,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("timing.%s must be >= 0", name)
		}
	}

	// Heartbeat sleeps longest of all workers.
	beat := effective(t.HeartbeatMs, DefaultTiming.HeartbeatMs)
	for name, v := range map[string]int{
		"input_ms":     effective(t.InputMs, DefaultTiming.InputMs),
		"net_yield_ms": effective(t.NetYieldMs, DefaultTiming.NetYieldMs),
		"ui_tick_ms":   effective(t.UITickMs, DefaultTiming.UITickMs),
	} {
		if beat <= v {
			return fmt.Errorf("timing.heartbeat_ms %d must exceed %s %d", beat, name, v)
		}
	}

	cool := effective(t.LinkCooldownMs, DefaultTiming.LinkCooldownMs)
	maxCool := effective(t.LinkMaxCooldownMs, DefaultTiming.LinkMaxCooldownMs)
	if maxCool < cool {
		return fmt.Errorf("timing.link_max_cooldown_ms %d below link_cooldown_ms %d", maxCool, cool)
	}
	return nil
}

// effective returns v, or def when v is the zero value.
func effective[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
