package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath     = "~/.daybook"
	DefaultKey      = "daybook-items"
	DefaultLogLevel = "warn"
	DefaultLocale   = "und"
)

// Config locates the daybook on disk and carries the settings that travel
// with it.
type Config interface {
	BasePath() string
	Key() string
	LogLevel() string
	Locale() string
}

// LoadConfig reads .daybook.yaml from $DAYBOOK_CONFIG_PATH, the working
// directory or the home directory, with DAYBOOK_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", DefaultPath)
	viper.SetDefault("key", DefaultKey)
	viper.SetDefault("log-level", DefaultLogLevel)
	viper.SetDefault("locale", DefaultLocale)
	viper.SetConfigName(".daybook") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:  path,
		Name:  viper.GetString("key"),
		Level: viper.GetString("log-level"),
		Lang:  viper.GetString("locale"),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Name  string `json:"key"`
	Level string `json:"logLevel"`
	Lang  string `json:"locale"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Key() string      { return f.Name }
func (f *fileConfig) LogLevel() string { return f.Level }
func (f *fileConfig) Locale() string   { return f.Lang }

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path  string
	Name  string
	Level string
	Lang  string
}

func (c StaticConfig) BasePath() string { return c.Path }

func (c StaticConfig) Key() string {
	if c.Name == "" {
		return DefaultKey
	}
	return c.Name
}

func (c StaticConfig) LogLevel() string {
	if c.Level == "" {
		return DefaultLogLevel
	}
	return c.Level
}

func (c StaticConfig) Locale() string {
	if c.Lang == "" {
		return DefaultLocale
	}
	return c.Lang
}
