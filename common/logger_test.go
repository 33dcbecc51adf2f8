package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
	}
	for _, tc := range tests {
		if got := NewLogger(&bytes.Buffer{}, tc.in, LogFormatText).GetLevel(); got != tc.want {
			t.Errorf("level(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info", LogFormatJSON)
	log.WithField("ldtk_level", "Cave_0").Info("level loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %q", buf.String())
	}
	if entry["msg"] != "level loaded" || entry["ldtk_level"] != "Cave_0" {
		t.Fatalf("entry = %v", entry)
	}
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "info", LogFormatText).Debug("hidden")
	NewLogger(&buf, "info", LogFormatText).Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("output = %q", out)
	}
}
