package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Node field
	NodeCount          = 80
	AttractionRadius   = 300.0
	AttractionStrength = 0.02
	ReturnForce        = 0.01
	BounceFactor       = -0.8
	Friction           = 0.98
	ConnectionRadius   = 150.0
	ConnectionAlpha    = 0.4
	PointerLinkRadius  = 200.0
	PointerLinkAlpha   = 0.6
	PointerRadius      = 4.0

	// Particle field
	ParticleCount    = 30
	ParticleHueBase  = 180.0
	ParticleHueRange = 60.0
	ParticleSat      = 0.7
	ParticleLight    = 0.6

	// Effects
	TypeSpeedMillis   = 100
	DeleteSpeedMillis = 50
	HoldMillis        = 2000
	CounterMillis     = 2000
	CounterStepMillis = 16
	SkillDelayMillis  = 200
	SubmitDelayMillis = 2000
)

// DefaultRoles are the texts cycled by the header typewriter.
var DefaultRoles = []string{
	"Full Stack Developer",
	"Cybersecurity Student",
	"IT Engineer",
	"UI/UX Designer",
	"Problem Solver",
	"Innovation Enthusiast",
}

// Settings is the runtime configuration, resolved from the environment.
type Settings struct {
	Width         int
	Height        int
	Nodes         int
	Particles     int
	Seed          int64
	ReducedMotion bool
	Sound         bool
	Roles         []string
}

// Default returns the settings used when no environment overrides exist.
func Default() Settings {
	return Settings{
		Width:     WindowWidth,
		Height:    WindowHeight,
		Nodes:     NodeCount,
		Particles: ParticleCount,
		Sound:     true,
		Roles:     append([]string(nil), DefaultRoles...),
	}
}

// Load reads an optional .env file and applies PORTFOLIO_* overrides on top of Default.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv resolves settings through lookup, so tests can supply a fake environment.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"PORTFOLIO_WIDTH", &s.Width},
		{"PORTFOLIO_HEIGHT", &s.Height},
		{"PORTFOLIO_NODES", &s.Nodes},
		{"PORTFOLIO_PARTICLES", &s.Particles},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = max(n, 0)
	}

	if raw, ok := lookup("PORTFOLIO_SEED"); ok && strings.TrimSpace(raw) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("PORTFOLIO_SEED: %w", err)
		}
		s.Seed = seed
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"PORTFOLIO_REDUCED_MOTION", &s.ReducedMotion},
		{"PORTFOLIO_SOUND", &s.Sound},
	}
	for _, v := range bools {
		raw, ok := lookup(v.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = b
	}

	if raw, ok := lookup("PORTFOLIO_ROLES"); ok {
		var roles []string
		for _, r := range strings.Split(raw, ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}
		if len(roles) > 0 {
			s.Roles = roles
		}
	}

	return s, nil
}
