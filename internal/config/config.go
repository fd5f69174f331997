package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"wilsonci/internal/domain"
)

const (
	DefaultConfidence = 0.95
	DefaultDigits     = 2
	DefaultLogLevel   = "warn"
)

// Config holds the resolved defaults for a run.
type Config struct {
	Confidence float64
	Digits     int
	Unit       domain.Unit
	LogLevel   string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Confidence: DefaultConfidence,
		Digits:     DefaultDigits,
		Unit:       domain.UnitPercent,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads the given dotenv files (".env" when none are named) and then
// the WILSONCI_* variables. A missing dotenv file is not an error.
func Load(logger zerolog.Logger, files ...string) (Config, error) {
	logger = logger.With().Str("component", "config").Logger()

	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug().Str("file", f).Msg("dotenv file not found, relying on environment")
				continue
			}
			return Config{}, err
		}
		logger.Debug().Str("file", f).Msg("loaded dotenv file")
	}

	cfg := Default()
	cfg.Confidence = envFloat(logger, "WILSONCI_CONF", cfg.Confidence, func(v float64) bool { return v > 0 && v < 1 })
	cfg.Digits = envInt(logger, "WILSONCI_DIGITS", cfg.Digits, func(v int) bool { return v >= 0 })
	cfg.LogLevel = envLevel(logger, "WILSONCI_LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("WILSONCI_UNIT"); v != "" {
		u, err := ParseUnit(v)
		if err != nil {
			logger.Warn().Str("key", "WILSONCI_UNIT").Str("value", v).Msg("invalid value, using default")
		} else {
			cfg.Unit = u
		}
	}
	return cfg, nil
}

// ParseUnit accepts "percent"/"%" and "prop"/"proportion".
func ParseUnit(s string) (domain.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percent", "%":
		return domain.UnitPercent, nil
	case "prop", "proportion":
		return domain.UnitProportion, nil
	}
	return 0, errors.New("unit must be percent or prop")
}

func envFloat(logger zerolog.Logger, key string, def float64, ok func(float64) bool) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !ok(v) {
		logger.Warn().Str("key", key).Str("value", s).Msg("invalid value, using default")
		return def
	}
	return v
}

func envInt(logger zerolog.Logger, key string, def int, ok func(int) bool) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || !ok(v) {
		logger.Warn().Str("key", key).Str("value", s).Msg("invalid value, using default")
		return def
	}
	return v
}

func envLevel(logger zerolog.Logger, key, def string) string {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	if _, err := zerolog.ParseLevel(s); err != nil {
		logger.Warn().Str("key", key).Str("value", s).Msg("invalid value, using default")
		return def
	}
	return s
}
