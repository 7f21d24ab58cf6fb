package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrNoHome is returned when neither the XDG variable nor a home directory is set
var ErrNoHome = errors.New("no home directory: set HOME or the XDG base directory variables")

// Config represents the application configuration
type Config struct {
	Color           string `toml:"color"`
	DefaultScenario string `toml:"default_scenario"`
	PlayerName      string `toml:"player_name"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{Color: ColorAuto}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() (string, error) {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "", ErrNoHome
	}
	return filepath.Join(homeDir, ".local", "share"), nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "", ErrNoHome
	}
	return filepath.Join(homeDir, ".config"), nil
}

// GetScenarioLibraryPath returns the path to the scenario library
func GetScenarioLibraryPath() (string, error) {
	dataHome, err := GetXDGDataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "pokedeck", "scenarios"), nil
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() (string, error) {
	configHome, err := GetXDGConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "pokedeck", "config.toml"), nil
}

// LoadConfig loads the config file. A config file that is missing or cannot
// be reached yields the built-in defaults; nothing is written.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Default(), nil
	}

	config := Default()
	if _, err := toml.Decode(string(data), config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if config.Color == "" {
		config.Color = ColorAuto
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}
}

// InitConfig writes the default config file unless one already exists and
// returns its path
func InitConfig() (string, error) {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	return configPath, writeConfig(configPath, Default())
}

// writeConfig encodes the config to path, creating its directory
func writeConfig(configPath string, config *Config) (err error) {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error writing config file: %v", cerr)
		}
	}()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetScenarioPath returns the path to a scenario, either in the scenario library or a relative path
func GetScenarioPath(name string) (string, error) {
	// First, try to find the scenario in the library, with or without extension
	if libraryPath, err := GetScenarioLibraryPath(); err == nil {
		for _, candidate := range []string{name, name + ".toml"} {
			scenarioPath := filepath.Join(libraryPath, candidate)
			if info, err := os.Stat(scenarioPath); err == nil && !info.IsDir() {
				return scenarioPath, nil
			}
		}
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("scenario not found: %s", name)
}

// SetDefaultScenario sets the default scenario in the config file
func SetDefaultScenario(name string) error {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return err
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultScenario = name

	return writeConfig(configPath, config)
}
