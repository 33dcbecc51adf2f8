package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Level != "Cave_0" {
		t.Fatalf("level = %q", s.Level)
	}
	if s.Lenient {
		t.Fatal("default load must be strict")
	}
	if s.Scale != DefaultScale || s.Step != DefaultStep {
		t.Fatalf("scale/step = %v/%v", s.Scale, s.Step)
	}
	if lvl, err := s.Logrus(); err != nil || lvl != logrus.InfoLevel {
		t.Fatalf("log level = %v, %v", lvl, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		check   func(t *testing.T, s Settings)
		wantErr error
	}{
		{
			name: "defaults_fill_zero_values",
			doc:  "level: Other\n",
			check: func(t *testing.T, s Settings) {
				if s.Level != "Other" || s.Scale != DefaultScale || s.LogLevel != DefaultLogLevel {
					t.Fatalf("settings = %+v", s)
				}
			},
		},
		{
			name: "explicit_values",
			doc:  "lenient: true\nscale: 2\nlog_level: debug\n",
			check: func(t *testing.T, s Settings) {
				if !s.Lenient || s.Scale != 2 || s.LogLevel != "debug" {
					t.Fatalf("settings = %+v", s)
				}
			},
		},
		{name: "bad_log_level", doc: "log_level: loud\n", wantErr: ErrInvalid},
		{name: "negative_scale", doc: "scale: -1\n", wantErr: ErrInvalid},
		{name: "huge_step", doc: "step: 3\n", wantErr: ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse([]byte(tc.doc))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tc.check(t, s)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("project: levels/caves.ldtk\ndebug: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Project != "levels/caves.ldtk" || s.Debug {
		t.Fatalf("settings = %+v", s)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
