package indev

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config carries the five tunables §6 names plus the USE_GROUP switch.
// All durations are expressed in milliseconds to match the tick source.
type Config struct {
	// ReadPeriodMS is how often the scheduler is expected to call
	// Registry.Tick. indev does not enforce this itself (the scheduler
	// owns timing); it is carried here so a host can read it back from
	// the same config file.
	ReadPeriodMS int64 `toml:"read_period_ms"`
	// LongPressMS is the elapsed-press threshold before SignalLongPress
	// fires.
	LongPressMS int64 `toml:"long_press_ms"`
	// LongPressRepMS is the minimum gap between consecutive
	// SignalLongPressRepeat emissions.
	LongPressRepMS int64 `toml:"long_press_rep_ms"`
	// DragLimitPx is the cumulative-motion dead zone (§4.3 LIMIT).
	DragLimitPx float64 `toml:"drag_limit_px"`
	// DragThrowPercent is the per-tick decay percentage applied to the
	// inertial throw vector (§4.4 THROW), in [1, 100].
	DragThrowPercent int `toml:"drag_throw_percent"`
	// UseGroup disables the keypad and encoder state machines (C6/C7)
	// entirely when false.
	UseGroup bool `toml:"use_group"`
}

// DefaultConfig returns the tunables' documented defaults (§4.1, §6).
func DefaultConfig() Config {
	return Config{
		ReadPeriodMS:     16,
		LongPressMS:      400,
		LongPressRepMS:   100,
		DragLimitPx:      10,
		DragThrowPercent: 10,
		UseGroup:         true,
	}
}

type configFile struct {
	Indev Config `toml:"indev"`
}

// LoadConfig reads a TOML document under an [indev] table and overlays it
// onto DefaultConfig. Keys the file omits keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := configFile{Indev: DefaultConfig()}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("indev: read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("indev: parse config %q: %w", path, err)
	}
	return cfg.Indev, nil
}
