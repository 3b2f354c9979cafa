package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/tidwall/jsonc"
)

// Config holds the modekit tool configuration.
type Config struct {
	Log    LogConfig    `json:"log,omitempty"`
	Server ServerConfig `json:"server,omitempty"`
	Watch  *bool        `json:"watch,omitempty"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `json:"level,omitempty"`
	Pretty bool   `json:"pretty,omitempty"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Port       int    `json:"port,omitempty"`
	Hostname   string `json:"hostname,omitempty"`
	EnableCORS *bool  `json:"enableCors,omitempty"`
}

// WatchEnabled reports whether the mode directories should be watched for
// changes. Defaults to true.
func (c *Config) WatchEnabled() bool {
	if c.Watch == nil {
		return true
	}
	return *c.Watch
}

// Load loads configuration from multiple sources (priority order):
// 1. Global config (~/.config/modekit/modekit.json[c])
// 2. Project config (.modekit/modekit.json[c])
// 3. MODEKIT_CONFIG file
// 4. Environment variables
func Load(directory string) (*Config, error) {
	config := &Config{}

	// Track loaded files to avoid duplicates
	loaded := make(map[string]bool)

	loadOnce := func(path string) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if loaded[absPath] {
			return
		}
		if loadConfigFile(path, config) == nil {
			loaded[absPath] = true
		}
	}

	// 1. Global config
	globalPath := GetPaths().Config
	loadOnce(filepath.Join(globalPath, "modekit.json"))
	loadOnce(filepath.Join(globalPath, "modekit.jsonc"))

	// 2. Project config
	if directory != "" {
		projectDir := ProjectModesDir(directory)
		loadOnce(filepath.Join(projectDir, "modekit.json"))
		loadOnce(filepath.Join(projectDir, "modekit.jsonc"))
	}

	// 3. MODEKIT_CONFIG file override
	if configPath := os.Getenv("MODEKIT_CONFIG"); configPath != "" {
		loadOnce(configPath)
	}

	// 4. Environment variables (highest priority)
	applyEnvOverrides(config)

	return config, nil
}

// loadConfigFile loads a single config file with interpolation support.
func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err // File doesn't exist, skip
	}

	// Strip JSONC comments using tidwall/jsonc
	data = jsonc.ToJSON(data)

	// Apply interpolation
	data = interpolate(data)

	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return err
	}

	mergeConfig(config, &fileConfig)
	return nil
}

// interpolate processes {env:VAR} placeholders.
func interpolate(data []byte) []byte {
	envPattern := regexp.MustCompile(`\{env:([^}]+)\}`)
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := envPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(varName)))
	})
}

// mergeConfig merges source config into target.
func mergeConfig(target, source *Config) {
	if source.Log.Level != "" {
		target.Log.Level = source.Log.Level
	}
	if source.Log.Pretty {
		target.Log.Pretty = true
	}
	if source.Server.Port != 0 {
		target.Server.Port = source.Server.Port
	}
	if source.Server.Hostname != "" {
		target.Server.Hostname = source.Server.Hostname
	}
	if source.Server.EnableCORS != nil {
		target.Server.EnableCORS = source.Server.EnableCORS
	}
	if source.Watch != nil {
		target.Watch = source.Watch
	}
}

// applyEnvOverrides applies MODEKIT_* environment variables.
func applyEnvOverrides(config *Config) {
	if level := os.Getenv("MODEKIT_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
	if pretty := os.Getenv("MODEKIT_LOG_PRETTY"); pretty != "" {
		config.Log.Pretty = pretty == "true" || pretty == "1"
	}
	if port := os.Getenv("MODEKIT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if hostname := os.Getenv("MODEKIT_HOSTNAME"); hostname != "" {
		config.Server.Hostname = hostname
	}
	if watch := os.Getenv("MODEKIT_WATCH"); watch != "" {
		v := watch == "true" || watch == "1"
		config.Watch = &v
	}
}
