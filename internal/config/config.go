// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Modes   ModesConfig   `mapstructure:"modes"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DisplayConfig selects the X display, screen and mode extension
type DisplayConfig struct {
	Name      string `mapstructure:"name"`      // Empty means $DISPLAY
	Screen    int    `mapstructure:"screen"`    // -1 means the display's default screen
	Extension string `mapstructure:"extension"` // auto, randr, xf86vidmode or none
}

// ModesConfig limits mode listings
type ModesConfig struct {
	Max int `mapstructure:"max"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Overrides LOG_LEVEL env var
}

// Extensions are the accepted display.extension values
var Extensions = []string{"auto", "randr", "xf86vidmode", "none"}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Display: DisplayConfig{
			Name:      "",
			Screen:    -1,
			Extension: "auto",
		},
		Modes: ModesConfig{
			Max: 256,
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	cfg *Config

	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("vidmode")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vidmode"))
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("VIDMODE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("display.name", DefaultConfig.Display.Name)
	viper.SetDefault("display.screen", DefaultConfig.Display.Screen)
	viper.SetDefault("display.extension", DefaultConfig.Display.Extension)
	viper.SetDefault("modes.max", DefaultConfig.Modes.Max)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	return nil
}

// Validate checks values viper cannot type check
func (c *Config) Validate() error {
	ext := strings.ToLower(c.Display.Extension)
	found := false
	for _, e := range Extensions {
		if e == ext {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("invalid display.extension %q, want one of %s", c.Display.Extension, strings.Join(Extensions, ", "))
	}
	c.Display.Extension = ext

	if c.Display.Screen < -1 {
		return fmt.Errorf("invalid display.screen %d", c.Display.Screen)
	}
	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		c := DefaultConfig
		return &c
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}
