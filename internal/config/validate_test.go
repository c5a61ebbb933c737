// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
)

// helper to build a minimal valid config
func base() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "192.168.1.20",
			Port: 1025,
		},
	}
}

// ---- tests ----

func TestValidate_MinimalOK(t *testing.T) {
	if err := Validate(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ServerRequired(t *testing.T) {
	cfg := base()
	cfg.Server.Host = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for missing host")
	}

	cfg = base()
	cfg.Server.Port = 70000
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for port out of range")
	}
}

func TestValidate_UnknownDrivers(t *testing.T) {
	cfg := base()
	cfg.Display.Driver = "oled"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown display driver")
	}

	cfg = base()
	cfg.Input.Driver = "gamepad"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown input driver")
	}
}

func TestValidate_TerminalInputNeedsTerminalDisplay(t *testing.T) {
	cfg := base()
	cfg.Display.Driver = DisplayHeadless

	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "terminal") {
		t.Fatalf("expected terminal pairing error, got %v", err)
	}

	cfg.Input.Driver = InputNone
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ModbusTransport(t *testing.T) {
	cfg := base()
	cfg.Input.Driver = InputModbus

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for tcp without endpoint")
	}

	cfg.Input.Modbus = ModbusConfig{Transport: "rtu"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for rtu without device")
	}

	cfg.Input.Modbus = ModbusConfig{Transport: "rtu", Device: "/dev/ttyUSB0"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Input.Modbus = ModbusConfig{Endpoint: "10.0.0.5:502", Address: 65534}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for address overflow")
	}
}

func TestValidate_NegativeTiming(t *testing.T) {
	cfg := base()
	cfg.Timing.PollMs = -1

	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "poll_ms") {
		t.Fatalf("expected poll_ms error, got %v", err)
	}
}

func TestValidate_HeartbeatMustBeLongest(t *testing.T) {
	cfg := base()
	cfg.Timing.HeartbeatMs = 20

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for heartbeat shorter than ui tick")
	}

	cfg.Timing.HeartbeatMs = 500
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_CooldownCap(t *testing.T) {
	cfg := base()
	cfg.Timing.LinkCooldownMs = 90000

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for cooldown above cap")
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := base()
	_ = Validate(cfg)

	if cfg.Display.Driver != "" || cfg.Timing.PollMs != 0 {
		t.Fatalf("Validate mutated config: %+v", cfg)
	}
}
