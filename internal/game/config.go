package game

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// Arena layout (in screen pixels).
const (
	PaddleHeight      = 20
	PaddleWidthRatio  = 0.25
	PaddleTopOffset   = 50
	PaddleBottomInset = 70 // distance from the bottom edge to player 2's top
	ZoneMargin        = 20 // paddles keep this far from the midline
	DividerThickness  = 2
	TintAlpha         = 98
)

// Text placement.
const (
	TextScale        = 5.0
	ScoreX           = 20
	ScoreOffsetY     = 84
	BannerOffsetY    = 37
	PromptPollPeriod = 10 * time.Millisecond
)

// Default match parameters.
const (
	DefaultPlayer1 = "user1"
	DefaultPlayer2 = "user2"
	DefaultTarget  = 5
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "pingpong.toml"

// AudioConfig controls the procedural sound effects.
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Config holds the tunables read from the TOML config file.
type Config struct {
	Title            string      `toml:"title"`
	Width            int         `toml:"width"`
	Height           int         `toml:"height"`
	TickRate         int         `toml:"tick_rate"`
	MaxTicksPerFrame int         `toml:"max_ticks_per_frame"`
	BallRadius       int         `toml:"ball_radius"`
	WelcomeDelayMS   int         `toml:"welcome_delay_ms"`
	ResetDelayMS     int         `toml:"reset_delay_ms"`
	WinDelayMS       int         `toml:"win_delay_ms"`
	LogLevel         string      `toml:"log_level"`
	Audio            AudioConfig `toml:"audio"`
}

func DefaultConfig() Config {
	return Config{
		Title:            "Ping Pong Game",
		Width:            800,
		Height:           700,
		TickRate:         240,
		MaxTicksPerFrame: 8,
		BallRadius:       10,
		WelcomeDelayMS:   1500,
		ResetDelayMS:     3000,
		WinDelayMS:       3000,
		LogLevel:         "info",
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.58,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("No config at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the arena cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Width < 100 || c.Height < 4*(PaddleTopOffset+ZoneMargin):
		return fmt.Errorf("window %dx%d too small", c.Width, c.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	case c.MaxTicksPerFrame <= 0:
		return fmt.Errorf("max_ticks_per_frame must be positive, got %d", c.MaxTicksPerFrame)
	case c.BallRadius <= 0 || 2*c.BallRadius >= c.Height/2:
		return fmt.Errorf("ball_radius %d out of range", c.BallRadius)
	case c.WelcomeDelayMS < 0 || c.ResetDelayMS < 0 || c.WinDelayMS < 0:
		return errors.New("delays must not be negative")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio volume %.2f outside 0..1", c.Audio.Volume)
	}
	return nil
}

// TickDuration is the fixed physics step.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c Config) WelcomeDelay() time.Duration { return ms(c.WelcomeDelayMS) }
func (c Config) ResetDelay() time.Duration   { return ms(c.ResetDelayMS) }
func (c Config) WinDelay() time.Duration     { return ms(c.WinDelayMS) }

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
