// internal/config/config.go
package config

type Config struct {
	Network NetworkConfig `yaml:"network"`
	Server  ServerConfig  `yaml:"server"`
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Timing  TimingConfig  `yaml:"timing"`
	Log     LogConfig     `yaml:"log"`
}

// ---- NETWORK ----

type NetworkConfig struct {
	SSID     string `yaml:"ssid"`
	Password string `yaml:"password"`
}

// ---- PRESENTATION SERVER ----

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- DISPLAY ----

const (
	DisplayTerminal = "terminal"
	DisplayHeadless = "headless"
)

type DisplayConfig struct {
	Driver string `yaml:"driver"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Scale divides the resolution shown by the terminal driver.
	Scale int `yaml:"scale"`
	// Snapshot is a PNG path written on exit by the headless driver.
	Snapshot string `yaml:"snapshot"`
}

// ---- INPUT ----

const (
	InputTerminal = "terminal"
	InputModbus   = "modbus"
	InputNone     = "none"
)

type InputConfig struct {
	Driver string       `yaml:"driver"`
	Modbus ModbusConfig `yaml:"modbus"`
}

// ModbusConfig describes buttons wired to consecutive discrete inputs
// (next, previous, select) starting at Address.
type ModbusConfig struct {
	Transport   string `yaml:"transport"` // tcp | rtu
	Endpoint    string `yaml:"endpoint"`
	Device      string `yaml:"device"`
	BaudRate    int    `yaml:"baud_rate"`
	UnitID      uint8  `yaml:"unit_id"`
	Address     uint16 `yaml:"address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
	SampleMs    int    `yaml:"sample_ms"`
	LongPressMs int    `yaml:"long_press_ms"`
}

// ---- TIMING ----

// TimingConfig overrides worker cadences. Zero means default.
type TimingConfig struct {
	InputMs           int `yaml:"input_ms"`
	WifiCheckMs       int `yaml:"wifi_check_ms"`
	NetYieldMs        int `yaml:"net_yield_ms"`
	PollMs            int `yaml:"poll_ms"`
	ForcedPollDelayMs int `yaml:"forced_poll_delay_ms"`
	RetryDelayMs      int `yaml:"retry_delay_ms"`
	LinkWaits         int `yaml:"link_waits"`
	LinkWaitStepMs    int `yaml:"link_wait_step_ms"`
	LinkCooldownMs    int `yaml:"link_cooldown_ms"`
	LinkMaxCooldownMs int `yaml:"link_max_cooldown_ms"`
	UITickMs          int `yaml:"ui_tick_ms"`
	MarqueePauseMs    int `yaml:"marquee_pause_ms"`
	MarqueeStepPx     int `yaml:"marquee_step_px"`
	MarqueePeriodMs   int `yaml:"marquee_period_ms"`
	MarqueeSpacerPx   int `yaml:"marquee_spacer_px"`
	HeartbeatMs       int `yaml:"heartbeat_ms"`
	MaxDrain          int `yaml:"max_drain"`
	CommandQueue      int `yaml:"command_queue"`
	UIQueue           int `yaml:"ui_queue"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
