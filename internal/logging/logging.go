// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger.
// With quiet set (a terminal panel owns the screen) logs go to file, or
// are discarded when no file is configured. The returned func restores
// the previous output and closes the file.
func Setup(level, file string, quiet bool) (func(), error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}

	orig := log.StandardLogger().Out
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	restore := func() { log.SetOutput(orig) }

	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open %s: %w", file, err)
		}
		log.SetOutput(f)
		return func() {
			restore()
			f.Close()
		}, nil

	case quiet:
		log.SetOutput(io.Discard)
	}
	return restore, nil
}
