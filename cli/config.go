package cli

import (
	"fmt"

	"github.com/katalvlaran/rotate/rotation"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Configuration keys; read from ROTATE_STRATEGY and ROTATE_LOG_LEVEL.
const (
	envPrefix   = "rotate"
	keyStrategy = "strategy"
	keyLogLevel = "log_level"
)

// Config holds driver settings that do not come from positional arguments.
type Config struct {
	// Strategy is the in-place algorithm used by the driver.
	Strategy rotation.Strategy
	// LogLevel gates diagnostics written to stderr.
	LogLevel zapcore.Level
}

// DefaultConfig is Shift with warn-level logging.
func DefaultConfig() Config {
	return Config{Strategy: rotation.Shift, LogLevel: zapcore.WarnLevel}
}

// LoadConfig reads the ROTATE_* environment through v. A nil v gets a fresh
// viper instance.
func LoadConfig(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyStrategy, rotation.Shift.String())
	v.SetDefault(keyLogLevel, zapcore.WarnLevel.String())

	strategy, err := rotation.ParseStrategy(v.GetString(keyStrategy))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", keyStrategy, err)
	}
	level, err := zapcore.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", keyLogLevel, err)
	}

	return Config{Strategy: strategy, LogLevel: level}, nil
}
