package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Welcome overlay buttons
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonGap    = 24

	// Navigation bar and page layout
	NavHeight      = 48
	ContentMargin  = 48
	SectionGap     = 96
	SectionPadding = 24
	LineHeight     = 18

	// Player widget, anchored to the bottom of the window
	PlayerHeight = 64
	PlayerMargin = 16

	// Scroll-to-top button
	ScrollTopSize = 40

	WheelStep = 60
)

// Config is read from STARLIGHT_* environment variables.
type Config struct {
	Frontend        string  `env:"STARLIGHT_FRONTEND"         envDefault:"window"`
	WindowWidth     int     `env:"STARLIGHT_WINDOW_WIDTH"     envDefault:"1024"`
	WindowHeight    int     `env:"STARLIGHT_WINDOW_HEIGHT"    envDefault:"640"`
	WelcomeStars    int     `env:"STARLIGHT_WELCOME_STARS"    envDefault:"180"`
	BackgroundStars int     `env:"STARLIGHT_BACKGROUND_STARS" envDefault:"120"`
	Twinkle         bool    `env:"STARLIGHT_TWINKLE"          envDefault:"true"`
	Music           string  `env:"STARLIGHT_MUSIC"`
	Volume          float64 `env:"STARLIGHT_VOLUME"           envDefault:"0.6"`
	Quick           bool    `env:"STARLIGHT_QUICK"            envDefault:"false"`
	FPS             int     `env:"STARLIGHT_FPS"              envDefault:"30"`
	Seed            uint64  `env:"STARLIGHT_SEED"             envDefault:"0"`
}

// Default returns the configuration an empty environment produces. The
// envDefault tags are the only source of default values.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config: bad envDefault tag: %v", err))
	}
	return cfg
}

// Load parses the environment on top of the defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case "window", "term":
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.WelcomeStars < 0 || c.BackgroundStars < 0 {
		return fmt.Errorf("star counts must not be negative")
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range [0, 1]", c.Volume)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
