package debug

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
	})
	fn()
	return buf.String()
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		Debug("test message %s", "arg")
	})

	if !strings.Contains(output, "DEBUG") {
		t.Errorf("Output should contain DEBUG prefix, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	output := capture(t, func() {
		SetDebug(false)
		Debug("this should not appear")
		DebugSection("hidden")
		DebugValue("k", "v")
		DebugJSON("j", map[string]int{"a": 1})
	})

	if output != "" {
		t.Errorf("Debug output should be empty when disabled, got: %s", output)
	}
}

func TestDebugSection(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		DebugSection("Test Section")
	})

	if !strings.Contains(output, "=== Test Section ===") {
		t.Errorf("Output should contain section header, got: %s", output)
	}
}

func TestDebugValue(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		DebugValue("destination", "_tests")
	})

	if !strings.Contains(output, "destination") || !strings.Contains(output, "_tests") {
		t.Errorf("Output should contain key and value, got: %s", output)
	}
}

func TestDebugJSON(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		DebugJSON("testData", map[string]interface{}{"foo": "bar", "num": 42})
	})

	if !strings.Contains(output, "testData:") {
		t.Errorf("Output should contain key, got: %s", output)
	}
	if !strings.Contains(output, "\"foo\"") {
		t.Errorf("Output should contain JSON data, got: %s", output)
	}
}
