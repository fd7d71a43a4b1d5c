package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gridwalk/dijkstra"
)

// ErrInvalidConfig is returned when a query file fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes how grid characters and moves are interpreted.
type Config struct {
	Wall     string `toml:"wall"`
	Start    string `toml:"start"`
	End      string `toml:"end"`
	MoveCost int64  `toml:"move_cost"`
	TurnCost int64  `toml:"turn_cost"`
	Facing   string `toml:"facing"`
}

// DefaultConfig returns the settings used when no --config is given.
func DefaultConfig() Config {
	return Config{
		Wall:     "#",
		Start:    "S",
		End:      "E",
		MoveCost: dijkstra.DefaultMoveCost,
		TurnCost: dijkstra.DefaultTurnPenalty,
		Facing:   "E",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// Keys missing from the file keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that markers are single characters, costs are
// non-negative and the facing names a direction.
func (c Config) Validate() error {
	for name, v := range map[string]string{"wall": c.Wall, "start": c.Start, "end": c.End} {
		if utf8.RuneCountInString(v) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, name, v)
		}
	}
	if c.MoveCost < 0 {
		return fmt.Errorf("%w: move_cost must be non-negative, got %d", ErrInvalidConfig, c.MoveCost)
	}
	if c.TurnCost < 0 {
		return fmt.Errorf("%w: turn_cost must be non-negative, got %d", ErrInvalidConfig, c.TurnCost)
	}
	if _, err := dijkstra.ParseDirection(c.Facing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) wall() rune  { return firstRune(c.Wall) }
func (c Config) start() rune { return firstRune(c.Start) }
func (c Config) end() rune   { return firstRune(c.End) }

func (c Config) facing() dijkstra.Direction {
	d, _ := dijkstra.ParseDirection(c.Facing)
	return d
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// loadConfig returns DefaultConfig when path is empty.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
