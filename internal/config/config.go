package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bannerlab/appdemos/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyOutputDir  = "output_dir"
	KeyListenAddr = "listen_addr"
	KeyLogLevel   = "log_level"
	KeySiteTitle  = "site_title"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyOutputDir, KeyListenAddr, KeyLogLevel, KeySiteTitle}

var defaults = map[string]string{
	KeyOutputDir:  "site",
	KeyListenAddr: "127.0.0.1:8080",
	KeyLogLevel:   "info",
	KeySiteTitle:  "App banner demos",
}

// Dir returns the path to the config directory (~/.appdemos/). The
// APPDEMOS_HOME environment variable overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.appdemos/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// OutputDir returns the default directory for generated sites.
func OutputDir() string { return Get(KeyOutputDir) }

// ListenAddr returns the preview server address.
func ListenAddr() string { return Get(KeyListenAddr) }

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// SiteTitle returns the title used on rendered pages.
func SiteTitle() string { return Get(KeySiteTitle) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
