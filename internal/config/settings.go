package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDataDir = "FLAPPY_DATA_DIR"
	EnvMute    = "FLAPPY_MUTE"
	EnvVolume  = "FLAPPY_VOLUME"
	EnvSeed    = "FLAPPY_SEED"
)

// Settings are the runtime knobs that are not part of the game's tuning.
type Settings struct {
	// DataDir holds the best score file on desktop builds.
	DataDir string
	Mute    bool
	// Volume is a log2 gain offset, 0 leaves samples untouched.
	Volume float64
	// Seed for pipe placement, 0 means seed from the clock.
	Seed int64
}

// Load reads an optional .env file and then the process environment.
// Malformed values are logged and replaced with defaults.
func Load() Settings {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] ignoring .env: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds Settings from a lookup function.
func FromEnv(getenv func(string) string) Settings {
	s := Settings{DataDir: defaultDataDir()}

	if v := strings.TrimSpace(getenv(EnvDataDir)); v != "" {
		s.DataDir = v
	}
	if v := strings.TrimSpace(getenv(EnvMute)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("[config] %s=%q is not a bool, keeping sound on", EnvMute, v)
		} else {
			s.Mute = b
		}
	}
	if v := strings.TrimSpace(getenv(EnvVolume)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("[config] %s=%q is not a number, using 0", EnvVolume, v)
		} else {
			s.Volume = f
		}
	}
	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("[config] %s=%q is not an integer, seeding from clock", EnvSeed, v)
		} else {
			s.Seed = n
		}
	}
	return s
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "flappy")
}
