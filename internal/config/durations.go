// internal/config/durations.go
package config

import (
	"net"
	"strconv"
	"time"
)

// Ms converts a millisecond config value.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// BaseURL is the presentation server root.
func (s ServerConfig) BaseURL() string {
	return "http://" + s.Addr()
}

// Addr is host:port.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
