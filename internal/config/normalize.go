// internal/config/normalize.go
package config

// DefaultTiming holds the cadences used when timing keys are omitted.
var DefaultTiming = TimingConfig{
	InputMs:           10,
	WifiCheckMs:       2000,
	NetYieldMs:        20,
	PollMs:            2000,
	ForcedPollDelayMs: 250,
	RetryDelayMs:      150,
	LinkWaits:         10,
	LinkWaitStepMs:    200,
	LinkCooldownMs:    5000,
	LinkMaxCooldownMs: 60000,
	UITickMs:          30,
	MarqueePauseMs:    1500,
	MarqueeStepPx:     2,
	MarqueePeriodMs:   30,
	MarqueeSpacerPx:   40,
	HeartbeatMs:       1000,
	MaxDrain:          4,
	CommandQueue:      8,
	UIQueue:           16,
}

const (
	defaultServerTimeoutMs = 1500
	defaultWidth           = 240
	defaultHeight          = 135
	defaultScale           = 2
	defaultModbusTimeoutMs = 500
	defaultModbusSampleMs  = 10
	defaultLongPressMs     = 800
	defaultBaudRate        = 19200
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Server.TimeoutMs = effective(cfg.Server.TimeoutMs, defaultServerTimeoutMs)

	d := &cfg.Display
	d.Driver = effective(d.Driver, DisplayTerminal)
	d.Width = effective(d.Width, defaultWidth)
	d.Height = effective(d.Height, defaultHeight)
	d.Scale = effective(d.Scale, defaultScale)

	in := &cfg.Input
	in.Driver = effective(in.Driver, InputTerminal)
	if in.Driver == InputModbus {
		m := &in.Modbus
		m.Transport = effective(m.Transport, "tcp")
		m.BaudRate = effective(m.BaudRate, defaultBaudRate)
		m.TimeoutMs = effective(m.TimeoutMs, defaultModbusTimeoutMs)
		m.SampleMs = effective(m.SampleMs, defaultModbusSampleMs)
		m.LongPressMs = effective(m.LongPressMs, defaultLongPressMs)
	}

	t := &cfg.Timing
	def := DefaultTiming
	for _, f := range []struct {
		v   *int
		def int
	}{
		{&t.InputMs, def.InputMs},
		{&t.WifiCheckMs, def.WifiCheckMs},
		{&t.NetYieldMs, def.NetYieldMs},
		{&t.PollMs, def.PollMs},
		{&t.ForcedPollDelayMs, def.ForcedPollDelayMs},
		{&t.RetryDelayMs, def.RetryDelayMs},
		{&t.LinkWaits, def.LinkWaits},
		{&t.LinkWaitStepMs, def.LinkWaitStepMs},
		{&t.LinkCooldownMs, def.LinkCooldownMs},
		{&t.LinkMaxCooldownMs, def.LinkMaxCooldownMs},
		{&t.UITickMs, def.UITickMs},
		{&t.MarqueePauseMs, def.MarqueePauseMs},
		{&t.MarqueeStepPx, def.MarqueeStepPx},
		{&t.MarqueePeriodMs, def.MarqueePeriodMs},
		{&t.MarqueeSpacerPx, def.MarqueeSpacerPx},
		{&t.HeartbeatMs, def.HeartbeatMs},
		{&t.MaxDrain, def.MaxDrain},
		{&t.CommandQueue, def.CommandQueue},
		{&t.UIQueue, def.UIQueue},
	} {
		*f.v = effective(*f.v, f.def)
	}

	cfg.Log.Level = effective(cfg.Log.Level, "info")
}
