package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnknownKey is returned by SetValue for keys the config does not have
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidConfig wraps validation failures
	ErrInvalidConfig = errors.New("invalid config")
)

// Config represents the application configuration
type Config struct {
	MismatchDelayMS int    `toml:"mismatch_delay_ms" validate:"min=0,max=10000"`
	Color           string `toml:"color" validate:"oneof=auto always never"`
	LogLevel        string `toml:"log_level" validate:"oneof=debug info warn error"`
	ShowCoordinates bool   `toml:"show_coordinates"`
}

var validate = validator.New()

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		MismatchDelayMS: 1000,
		Color:           "auto",
		LogLevel:        "warn",
		ShowCoordinates: true,
	}
}

// MismatchDelay returns how long a failed pair stays face-up
func (c *Config) MismatchDelay() time.Duration {
	return time.Duration(c.MismatchDelayMS) * time.Millisecond
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetRecordsDir returns where finished game records are stored
func GetRecordsDir() string {
	return filepath.Join(GetXDGDataHome(), "concentration", "records")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "concentration", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	config, err := readConfig()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", GetConfigFilePath(), err)
	}

	return config, nil
}

// readConfig decodes the config file without validating it
func readConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := SaveConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Keys lists the settable config keys
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var setters = map[string]func(c *Config, value string) error{
	"mismatch_delay_ms": func(c *Config, value string) error {
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("mismatch_delay_ms must be an integer: %w", err)
		}
		c.MismatchDelayMS = ms
		return nil
	},
	"color": func(c *Config, value string) error {
		c.Color = strings.ToLower(value)
		return nil
	},
	"log_level": func(c *Config, value string) error {
		c.LogLevel = strings.ToLower(value)
		return nil
	},
	"show_coordinates": func(c *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_coordinates must be true or false: %w", err)
		}
		c.ShowCoordinates = b
		return nil
	},
}

// SetValue updates one key in the config file. The file is not validated
// before the change, so a bad value can be repaired with SetValue.
func SetValue(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: %s (known: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}

	config, err := readConfig()
	if err != nil {
		return err
	}

	if err := set(config, value); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	return SaveConfig(config)
}
