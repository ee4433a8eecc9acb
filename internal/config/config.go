package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config search paths (in order of precedence):
	// 1. Walk up from CWD to find a project .msgmerge3/ directory, so
	//    commands work from subdirectories too.
	cwd, err := os.Getwd()
	if err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			projectDir := filepath.Join(dir, ".msgmerge3")
			configPath := filepath.Join(projectDir, "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.AddConfigPath(projectDir)
				break
			}
			if info, err := os.Stat(projectDir); err == nil && info.IsDir() {
				v.AddConfigPath(projectDir)
				break
			}
		}

		v.AddConfigPath(filepath.Join(cwd, ".msgmerge3"))
	}

	// 2. User config directory (~/.config/msgmerge3/).
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "msgmerge3"))
	}

	// 3. Home directory (~/.msgmerge3/).
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".msgmerge3"))
	}

	// Automatic environment variable binding: MSGMERGE3_TO_CODE,
	// MSGMERGE3_JSON, MSGMERGE3_NO_COLOR, MSGMERGE3_LOG_FILE, ... take
	// precedence over the config file.
	v.SetEnvPrefix("MSGMERGE3")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("to-code", "")
	v.SetDefault("json", false)
	v.SetDefault("no-color", false)
	v.SetDefault("log-file", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// GetString retrieves a string configuration value.
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool retrieves a boolean configuration value.
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt retrieves an integer configuration value.
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetDuration retrieves a duration configuration value.
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a configuration value.
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}

// AllSettings returns all configuration settings as a map.
func AllSettings() map[string]interface{} {
	if v == nil {
		return map[string]interface{}{}
	}
	return v.AllSettings()
}
