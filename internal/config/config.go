package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to environment variable overrides, e.g. TRIE_WORDS.
const EnvPrefix = "TRIE"

// Config holds all configuration for the trie command
type Config struct {
	Words       string    `mapstructure:"words" yaml:"words"`
	Fold        bool      `mapstructure:"fold" yaml:"fold"`
	Interactive bool      `mapstructure:"interactive" yaml:"interactive"`
	Log         LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Flags registers the command line flags understood by Load.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("words", "", "word list to load, one word per line")
	fs.Bool("fold", false, "strip accents and lowercase word list lines before inserting")
	fs.Bool("interactive", false, "force the shell prompt even when stdin is not a terminal")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
}

// Load builds the configuration from defaults, the optional config file,
// TRIE_* environment variables and the flags in fs, later sources winning.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if path, err := fs.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
		for key, name := range map[string]string{
			"words":       "words",
			"fold":        "fold",
			"interactive": "interactive",
			"log.level":   "log-level",
		} {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("words", "")
	v.SetDefault("fold", false)
	v.SetDefault("interactive", false)
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ZerologLevel parses the configured level.
func (l LogConfig) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(out), nil
}
