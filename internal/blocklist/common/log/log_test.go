package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	entries []string
}

func (l *testLogger) Info(_ map[string]any, msg string)  { l.entries = append(l.entries, "INFO:"+msg) }
func (l *testLogger) Error(_ map[string]any, msg string) { l.entries = append(l.entries, "ERROR:"+msg) }
func (l *testLogger) Debug(_ map[string]any, msg string) { l.entries = append(l.entries, "DEBUG:"+msg) }
func (l *testLogger) Warn(_ map[string]any, msg string)  { l.entries = append(l.entries, "WARN:"+msg) }
func (l *testLogger) Panic(_ map[string]any, msg string) {}
func (l *testLogger) Fatal(_ map[string]any, msg string) {}

func TestActualZapLogger(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	var out, errOut bytes.Buffer
	require.NoError(t, Configure("dev", "debug", &out, &errOut))

	// test with fields and message
	Debug(map[string]any{
		"key1": "value1",
		"key2": 42,
		"key3": true,
	}, "test debug")
	// test with just a message
	Info(nil, "test info")
	Warn(nil, "test warn")
	Error(nil, "test error")
	// recover handler for panic
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic, but none occurred")
		}
	}()
	// test panic
	Panic(nil, "test panic") // This should panic
	// Note: Fatal will stop the test, so we don't call it here.
}

func TestConfigure_SplitsStreamsByLevel(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	var out, errOut bytes.Buffer
	require.NoError(t, Configure("dev", "info", &out, &errOut))

	Debug(nil, "hidden debug")
	Info(map[string]any{"file": "a.txt"}, "info line")
	Warn(nil, "warn line")
	Error(nil, "error line")

	assert.Contains(t, out.String(), "info line")
	assert.Contains(t, out.String(), "a.txt")
	assert.NotContains(t, out.String(), "warn line")
	assert.NotContains(t, out.String(), "hidden debug")

	assert.Contains(t, errOut.String(), "WARN")
	assert.Contains(t, errOut.String(), "warn line")
	assert.Contains(t, errOut.String(), "ERROR")
	assert.Contains(t, errOut.String(), "error line")
	assert.NotContains(t, errOut.String(), "info line")
	assert.Contains(t, errOut.String(), Name)
}

func TestConfigure_ProdWritesJSON(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	var out, errOut bytes.Buffer
	require.NoError(t, Configure("prod", "info", &out, &errOut))

	Info(map[string]any{"entries": 3}, "done")

	line := strings.TrimSpace(out.String())
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &m))
	assert.Equal(t, "done", m["msg"])
	assert.Equal(t, "info", m["level"])
	assert.Contains(t, m, "time")
	assert.EqualValues(t, 3, m["entries"])
	assert.Empty(t, errOut.String())
}

func TestSetLoggerAndGlobalLogging(t *testing.T) {
	// set up test fixtures
	orig := GetLogger()
	defer func() {
		SetLogger(orig) // Restore original logger after test
	}()
	tlog := &testLogger{}
	SetLogger(tlog)

	Info(nil, "info msg")
	Error(nil, "error msg")
	Debug(nil, "debug msg")
	Warn(nil, "warn msg")

	expected := []string{
		"INFO:info msg",
		"ERROR:error msg",
		"DEBUG:debug msg",
		"WARN:warn msg",
	}

	if len(tlog.entries) != len(expected) {
		t.Fatalf("expected %d log entries, got %d", len(expected), len(tlog.entries))
	}
	for i, msg := range expected {
		if tlog.entries[i] != msg {
			t.Errorf("expected log[%d] = %q, got %q", i, msg, tlog.entries[i])
		}
	}
}

func TestConfigure_ValidLevels(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	for _, lvl := range []string{"debug", "info", "warn", "error", "INFO"} {
		if err := Configure("dev", lvl, nil, nil); err != nil {
			t.Errorf("Configure(dev, %q) unexpected error: %v", lvl, err)
		}
	}
	if err := Configure("prod", "info", nil, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigure_InvalidLevel(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	err := Configure("dev", "notalevel", nil, nil)
	if err == nil {
		t.Fatal("expected error for invalid log level, got nil")
	}
	if GetLogger() != orig {
		t.Error("global logger should be untouched after a failed Configure")
	}
}

func TestNoopLogger_TestAllLevels(t *testing.T) {
	orig := GetLogger()
	defer func() {
		SetLogger(orig)
	}()
	SetLogger(NewNoopLogger())

	Debug(nil, "debug message")
	Info(nil, "info message")
	Warn(nil, "warn message")
	Error(nil, "error message")
	Panic(nil, "panic message")
	Fatal(nil, "fatal message")
}
