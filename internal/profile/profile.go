package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load, e.g. TIEMPO_DRIVER.
const EnvPrefix = "TIEMPO"

// Profile is the configuration of a tiempo run.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Data is the data directory, used for the default sqlite database
	Data string
	// Driver is the database driver (sqlite or postgres)
	Driver string
	// DSN points to where generated corpora are stored
	DSN string
	// Version is the current version of the binary
	Version string

	// Corpus generation
	Seed           int64 // TIEMPO_SEED (default: 42)
	Iterations     int   // TIEMPO_ITERATIONS (default: 4)
	StepMinutes    int   // TIEMPO_STEP_MINUTES (default: 5)
	Workers        int   // TIEMPO_WORKERS (default: 0, one per CPU)
	ContextualSize int   // TIEMPO_CONTEXTUAL_SIZE (default: 12000)

	// DefaultHour is the hour used for day requests that name no time. -1 keeps the
	// context's time of day.
	DefaultHour int // TIEMPO_DEFAULT_HOUR (default: -1)

	// LogLevel is one of debug, info, warn, error
	LogLevel string // TIEMPO_LOG_LEVEL (default: info)
}

// Keys read by Load. Flags bound to these keys override environment values.
const (
	KeyMode           = "mode"
	KeyData           = "data"
	KeyDriver         = "driver"
	KeyDSN            = "dsn"
	KeySeed           = "seed"
	KeyIterations     = "iterations"
	KeyStepMinutes    = "step-minutes"
	KeyWorkers        = "workers"
	KeyContextualSize = "contextual-size"
	KeyDefaultHour    = "default-hour"
	KeyLogLevel       = "log-level"
	KeyConfig         = "config"
)

// NewViper returns a viper instance with the defaults and environment mapping of Profile.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyMode, "dev")
	v.SetDefault(KeyDriver, "sqlite")
	v.SetDefault(KeySeed, 42)
	v.SetDefault(KeyIterations, 4)
	v.SetDefault(KeyStepMinutes, 5)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyContextualSize, 12000)
	v.SetDefault(KeyDefaultHour, -1)
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// Load builds a profile from v. When the config key names a file it is read first;
// environment variables and bound flags take precedence over its values.
func Load(v *viper.Viper) (*Profile, error) {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}
	return &Profile{
		Mode:           v.GetString(KeyMode),
		Data:           v.GetString(KeyData),
		Driver:         v.GetString(KeyDriver),
		DSN:            v.GetString(KeyDSN),
		Seed:           v.GetInt64(KeySeed),
		Iterations:     v.GetInt(KeyIterations),
		StepMinutes:    v.GetInt(KeyStepMinutes),
		Workers:        v.GetInt(KeyWorkers),
		ContextualSize: v.GetInt(KeyContextualSize),
		DefaultHour:    v.GetInt(KeyDefaultHour),
		LogLevel:       v.GetString(KeyLogLevel),
	}, nil
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// SlogLevel returns the parsed log level, defaulting to info.
func (p *Profile) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(p.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func checkDataDir(dataDir string) (string, error) {
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return "", err
	}

	// Trim trailing \ or / in case user supplies
	absDir = strings.TrimRight(absDir, "\\/")
	if _, err := os.Stat(absDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", absDir)
	}
	return absDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	switch p.Driver {
	case "sqlite":
	case "postgres":
		if p.DSN == "" {
			return errors.New("postgres driver requires a DSN")
		}
	default:
		return errors.Errorf("unknown driver %q: only 'sqlite' and 'postgres' are supported", p.Driver)
	}

	if p.Iterations <= 0 {
		return errors.Errorf("iterations must be positive, got %d", p.Iterations)
	}
	if p.StepMinutes <= 0 || p.StepMinutes > 1440 {
		return errors.Errorf("step minutes must be in [1,1440], got %d", p.StepMinutes)
	}
	if p.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", p.Workers)
	}
	if p.ContextualSize <= 0 {
		return errors.Errorf("contextual size must be positive, got %d", p.ContextualSize)
	}
	if p.DefaultHour < -1 || p.DefaultHour > 23 {
		return errors.Errorf("default hour must be -1 or in [0,23], got %d", p.DefaultHour)
	}

	if p.Data == "" {
		p.Data = "."
	}
	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		slog.Error("failed to check data dir", slog.String("data", p.Data), slog.String("error", err.Error()))
		return err
	}

	p.Data = dataDir
	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("tiempo_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}

	return nil
}
