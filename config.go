package gesture

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the on-disk configuration file layout:
//
//	[gesture]
//	drag_threshold = 5.0
//	continuous_drag_on_tick = true
//	dedupe_tick_drag = false
//
//	[log]
//	level = "debug"
//	format = "text"
type Settings struct {
	Gesture Config     `toml:"gesture"`
	Log     LogOptions `toml:"log"`
}

// DefaultSettings returns the settings used for keys a file leaves out.
func DefaultSettings() Settings {
	return Settings{
		Gesture: DefaultConfig(),
		Log:     LogOptions{Level: "info", Format: "text"},
	}
}

// LoadSettings reads a TOML settings file. Keys missing from the file keep
// their defaults; unknown keys are an error.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return ParseSettings(string(data))
}

// ParseSettings parses TOML settings text. See LoadSettings.
func ParseSettings(data string) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("parse settings: %w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := s.Gesture.Validate(); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if _, err := parseLevel(s.Log.Level); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}
