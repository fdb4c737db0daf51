package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, false)
)

const timeFormat = "15:04:05.000"

func newLogger(w io.Writer, plain bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "DEBUG",
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
	if plain {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	logger = newLogger(out, noColor)
}

// SetOutput redirects debug output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	logger = newLogger(out, noColor)
}

func current() (*log.Logger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, enabled
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	l, on := current()
	if !on {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	l, on := current()
	if !on {
		return
	}
	l.Debug("=== " + section + " ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	l, on := current()
	if !on {
		return
	}
	l.Debug(key, "value", value)
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	l, on := current()
	if !on {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		l.Debug("marshal failed", "key", key, "err", err)
		return
	}
	l.Debug(key + ":\n" + string(jsonBytes))
}
