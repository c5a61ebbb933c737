// internal/input/modbus/controls.go
package modbus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/goburrow/modbus"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/slide-remote/internal/input"
)

// Discrete input offsets from Config.Address.
const (
	bitNext = iota
	bitPrevious
	bitSelect
	bitCount
)

// maxPending bounds buffered events; newer events are dropped when full.
const maxPending = 16

// Config describes one Modbus I/O module with three buttons wired to
// consecutive discrete inputs.
type Config struct {
	Transport string // "tcp" or "rtu"
	Endpoint  string // tcp: host:port
	Device    string // rtu: serial device path
	BaudRate  int
	UnitID    uint8
	Address   uint16
	Timeout   time.Duration
	Sample    time.Duration
	LongPress time.Duration
}

// BitReader is the subset of modbus.Client used here.
type BitReader interface {
	ReadDiscreteInputs(address, quantity uint16) ([]byte, error)
}

// Controls samples buttons over Modbus and buffers the resulting events.
// Sampling runs in its own goroutine; Read only drains the buffer.
type Controls struct {
	cfg    Config
	reader BitReader
	closer io.Closer
	clk    clock.Clock

	mu      sync.Mutex
	pending []input.Event

	// sampler-owned
	prev      [bitCount]bool
	pressedAt time.Time
	longSent  bool
	failing   bool
}

// Dial connects to the I/O module.
func Dial(cfg Config) (*Controls, error) {
	var (
		handler modbus.ClientHandler
		conn    interface {
			Connect() error
			Close() error
		}
	)

	switch cfg.Transport {
	case "", "tcp":
		if cfg.Endpoint == "" {
			return nil, errors.New("input modbus: endpoint required")
		}
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		handler, conn = h, h

	case "rtu":
		if cfg.Device == "" {
			return nil, errors.New("input modbus: device required")
		}
		h := modbus.NewRTUClientHandler(cfg.Device)
		h.BaudRate = cfg.BaudRate
		h.DataBits = 8
		h.Parity = "N"
		h.StopBits = 1
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		handler, conn = h, h

	default:
		return nil, fmt.Errorf("input modbus: unknown transport %q", cfg.Transport)
	}

	if err := conn.Connect(); err != nil {
		return nil, fmt.Errorf("input modbus: connect: %w", err)
	}

	c := New(cfg, modbus.NewClient(handler), nil)
	c.closer = conn
	return c, nil
}

// New creates controls over an existing reader.
func New(cfg Config, reader BitReader, clk clock.Clock) *Controls {
	if clk == nil {
		clk = clock.New()
	}
	return &Controls{cfg: cfg, reader: reader, clk: clk}
}

// Close releases the underlying connection.
func (c *Controls) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Read drains buffered events.
func (c *Controls) Read() []input.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 {
		return nil
	}
	out := c.pending
	c.pending = nil
	return out
}

// Run samples every Sample interval until ctx ends.
func (c *Controls) Run(ctx context.Context) error {
	for {
		if err := c.Sample(c.clk.Now()); err != nil {
			if !c.failing {
				log.WithError(err).Warn("input modbus: sample failed")
			}
			c.failing = true
		} else if c.failing {
			log.Info("input modbus: sampling recovered")
			c.failing = false
		}

		select {
		case <-ctx.Done():
			return nil
		case <-c.clk.After(c.cfg.Sample):
		}
	}
}

// Sample reads the buttons once and records edge events.
func (c *Controls) Sample(now time.Time) error {
	raw, err := c.reader.ReadDiscreteInputs(c.cfg.Address, bitCount)
	if err != nil {
		return err
	}
	bits := unpackBits(raw, bitCount)
	if len(bits) < bitCount {
		return fmt.Errorf("input modbus: short response (%d bytes)", len(raw))
	}

	var cur [bitCount]bool
	copy(cur[:], bits)

	if cur[bitNext] && !c.prev[bitNext] {
		c.push(input.NextClick)
	}
	if cur[bitPrevious] && !c.prev[bitPrevious] {
		c.push(input.PreviousClick)
	}
	c.sampleSelect(cur[bitSelect], now)

	c.prev = cur
	return nil
}

// sampleSelect fires a long press while held past LongPress,
// otherwise a short press on release.
func (c *Controls) sampleSelect(down bool, now time.Time) {
	was := c.prev[bitSelect]

	switch {
	case down && !was:
		c.pressedAt = now
		c.longSent = false

	case down && was:
		if !c.longSent && now.Sub(c.pressedAt) >= c.cfg.LongPress {
			c.longSent = true
			c.push(input.SelectLong)
		}

	case !down && was:
		if !c.longSent {
			c.push(input.SelectShort)
		}
	}
}

func (c *Controls) push(ev input.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) >= maxPending {
		log.WithField("event", ev).Debug("input modbus: event buffer full, dropped")
		return
	}
	c.pending = append(c.pending, ev)
}

func unpackBits(raw []byte, n int) []bool {
	if len(raw)*8 < n {
		return nil
	}
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = raw[i/8]&(1<<uint(i%8)) != 0
	}
	return out
}
