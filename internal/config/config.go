// Package config loads read-you's layered configuration. A base config.yaml
// is searched across an explicit ordered list of candidate directories, then
// secrets.yaml from the same directory and environment variables are merged
// over it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"readyou/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base configuration file looked up in each
	// candidate directory.
	ConfigFileName = "config.yaml"
	// SecretsFileName holds the API key and is merged over the base config.
	SecretsFileName = "secrets.yaml"

	// DefaultModel is used when the config names no model.
	DefaultModel = "gpt-4-0125-preview"
)

// placeholderKeys are values shipped in templates that must never reach the API.
var placeholderKeys = map[string]bool{
	"YOUR-API-KEY-GOES-IN-SECRETS.YAML": true,
	"your-actual-api-key-here":          true,
}

// Config is the complete read-you configuration.
type Config struct {
	OpenAI  OpenAIConfig  `yaml:"openai" mapstructure:"openai"`
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// OpenAIConfig configures the generation backend.
type OpenAIConfig struct {
	APIKey         string `yaml:"api_key" mapstructure:"api_key"`
	Model          string `yaml:"model" mapstructure:"model"`
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// ScanConfig configures repository scanning.
type ScanConfig struct {
	// Ignore holds extra exclusion globs matched against relative paths,
	// e.g. "vendor/**" or "**/generated_*.go"
	Ignore []string `yaml:"ignore" mapstructure:"ignore"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Level  string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			Model:          DefaultModel,
			BaseURL:        "https://api.openai.com/v1",
			TimeoutSeconds: 120,
		},
		Scan: ScanConfig{
			Ignore: []string{},
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// DefaultSearchDirs returns the ordered candidate config directories:
// package-local, user, system.
func DefaultSearchDirs() []string {
	dirs := []string{"config"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "read-you"))
	}
	dirs = append(dirs, "/etc/read-you")
	return dirs
}

// UserConfigDir returns the per-user config directory, the scaffold target.
func UserConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.InternalError, "cannot determine home directory", err)
	}
	return filepath.Join(home, ".config", "read-you"), nil
}

// Load reads configuration from the first candidate directory containing
// config.yaml, merges secrets.yaml from the same directory when present, and
// finally applies environment overrides. A .env file in the working directory
// is honored for the key variables.
func Load(searchDirs []string) (*Config, error) {
	// Best effort: a missing .env is the normal case
	_ = godotenv.Load()

	configDir := ""
	for _, dir := range searchDirs {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			configDir = dir
			break
		}
	}
	if configDir == "" {
		return nil, errors.New(errors.ConfigMissing,
			fmt.Sprintf("no %s found in: %s", ConfigFileName, strings.Join(searchDirs, ", "))).
			WithHint("Run 'readyou init' to create a default configuration")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(filepath.Join(configDir, ConfigFileName))
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid, "error reading "+ConfigFileName, err)
	}

	secretsPath := filepath.Join(configDir, SecretsFileName)
	if _, err := os.Stat(secretsPath); err == nil {
		v.SetConfigFile(secretsPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrap(errors.ConfigInvalid, "error reading "+SecretsFileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid, "malformed configuration", err)
	}

	if key := apiKeyFromEnv(); key != "" {
		cfg.OpenAI.APIKey = key
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("openai.model", def.OpenAI.Model)
	v.SetDefault("openai.base_url", def.OpenAI.BaseURL)
	v.SetDefault("openai.timeout_seconds", def.OpenAI.TimeoutSeconds)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)
}

func apiKeyFromEnv() string {
	for _, name := range []string{"READYOU_API_KEY", "OPENAI_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			return key
		}
	}
	return ""
}

// Validate fails fast when the API key is absent or still a placeholder.
func (c *Config) Validate() error {
	key := strings.TrimSpace(c.OpenAI.APIKey)
	if key == "" || placeholderKeys[key] {
		return errors.New(errors.APIKeyInvalid, "invalid API key").
			WithHint("Add your OpenAI key to " + SecretsFileName + " or set OPENAI_API_KEY")
	}
	return nil
}
