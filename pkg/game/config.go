package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/qnkhuat/blockfall/pkg/mino"
)

// Duration is a time.Duration written as "300ms" in JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"300ms\": %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

type Config struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	// Frames per second of the simulation.
	TickRate int `json:"tick_rate"`

	// Frames between gravity steps at score zero, the floor it speeds up to,
	// and the points needed to shave one frame off.
	BaseCadence  int `json:"base_cadence"`
	MinCadence   int `json:"min_cadence"`
	SpeedDivisor int `json:"speed_divisor"`

	SoftDropCadence int     `json:"soft_drop_cadence"`
	RepeatThreshold float64 `json:"repeat_threshold"`

	FlashDelay Duration `json:"flash_delay"`

	Randomizer string `json:"randomizer"`
	Seed       int64  `json:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Columns:         10,
		Rows:            20,
		TickRate:        60,
		BaseCadence:     30,
		MinCadence:      10,
		SpeedDivisor:    400,
		SoftDropCadence: 7,
		RepeatThreshold: 8.5,
		FlashDelay:      Duration(300 * time.Millisecond),
		Randomizer:      mino.RandomizerUniform,
	}
}

// LoadConfig reads a JSON config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Columns < 4:
		return fmt.Errorf("columns must be at least 4, got %d", c.Columns)
	case c.Rows < 4:
		return fmt.Errorf("rows must be at least 4, got %d", c.Rows)
	case c.TickRate <= 0:
		return errors.New("tick rate must be positive")
	case c.MinCadence <= 0:
		return errors.New("minimum cadence must be positive")
	case c.BaseCadence < c.MinCadence:
		return fmt.Errorf("base cadence %d is below the minimum cadence %d", c.BaseCadence, c.MinCadence)
	case c.SpeedDivisor <= 0:
		return errors.New("speed divisor must be positive")
	case c.SoftDropCadence <= 0:
		return errors.New("soft drop cadence must be positive")
	case c.RepeatThreshold <= 0:
		return errors.New("repeat threshold must be positive")
	case c.FlashDelay < 0:
		return errors.New("flash delay must not be negative")
	}

	if _, err := mino.NewRandomizer(c.Randomizer, 0); err != nil {
		return err
	}

	return nil
}

// NewRandomizer builds the configured randomizer. A zero seed is replaced
// by the current time.
func (c Config) NewRandomizer() (mino.Randomizer, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return mino.NewRandomizer(c.Randomizer, seed)
}

// FrameDuration is the wall time of one simulation step.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
