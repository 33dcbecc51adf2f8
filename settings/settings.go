// Package settings holds the viewer configuration. Settings are read from a
// yaml file, falling back to the copy embedded in the binary.
package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed settings.yaml
var defaultSettings []byte

var ErrInvalid = errors.New("settings: invalid")

const (
	DefaultScale    = 4
	DefaultStep     = 1.0 / 60.0
	DefaultLogLevel = "info"
)

type Settings struct {
	// Project is an LDtk file on disk. Empty means the bundled project.
	Project string `yaml:"project"`
	// Level is the level identifier; empty picks the first level.
	Level string `yaml:"level"`
	// Lenient skips unsupported level content instead of refusing the level.
	Lenient  bool    `yaml:"lenient"`
	Scale    float64 `yaml:"scale"`
	Step     float64 `yaml:"step"`
	LogLevel string  `yaml:"log_level"`
	Debug    bool    `yaml:"debug"`
	// Watch reloads the level when the project or settings file changes.
	Watch bool `yaml:"watch"`
}

// Default returns the embedded settings.
func Default() Settings {
	s, err := Parse(defaultSettings)
	if err != nil {
		panic(fmt.Sprintf("settings: embedded default: %v", err))
	}
	return s
}

// Load reads path, or the embedded settings when path is empty.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a yaml document and fills unset fields with defaults.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: unmarshal: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Scale == 0 {
		s.Scale = DefaultScale
	}
	if s.Step == 0 {
		s.Step = DefaultStep
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
}

func (s Settings) Validate() error {
	if s.Scale < 0 {
		return fmt.Errorf("%w: scale %v", ErrInvalid, s.Scale)
	}
	if s.Step < 0 || s.Step > 1 {
		return fmt.Errorf("%w: step %v", ErrInvalid, s.Step)
	}
	if _, err := s.Logrus(); err != nil {
		return err
	}
	return nil
}

// Logrus returns the configured log level.
func (s Settings) Logrus() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return lvl, nil
}
