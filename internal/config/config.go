package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"gamegrid/internal/eventbus"
)

// FileName is the name of the config file inside the gamegrid config directory
const FileName = "config.toml"

// ErrInvalidPageSizes is returned when the page size settings are inconsistent
var ErrInvalidPageSizes = errors.New("invalid page size settings")

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Catalog    string         `toml:"catalog"` // empty means the embedded catalog
	UISettings UISettings     `toml:"ui"`
	Server     ServerSettings `toml:"server"`
	Log        LogSettings    `toml:"log"`
}

// UISettings represents view-related configuration
type UISettings struct {
	PageSizes        []int `toml:"page_sizes"`
	DefaultPageSize  int   `toml:"default_page_size"`
	MaxVisiblePages  int   `toml:"max_visible_pages"`
	ShowDescriptions bool  `toml:"show_descriptions"`
}

// ServerSettings configures `gamegrid serve`
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// LogSettings configures the process-wide logger
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // TUI log file; empty means gamegrid.log in the config dir
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the gamegrid config directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gamegrid")
}

// NewConfigService creates a config service bound to the default config path
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), FileName),
	}
}

// NewConfigServiceForPath creates a config service bound to an explicit path
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = filepath.Join(Dir(), FileName)
	}
	return &configService{bus: bus, filePath: path}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing fields keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the page size settings
func (c *Config) Validate() error {
	if len(c.UISettings.PageSizes) == 0 {
		return fmt.Errorf("%w: page_sizes is empty", ErrInvalidPageSizes)
	}
	found := false
	for _, size := range c.UISettings.PageSizes {
		if size <= 0 {
			return fmt.Errorf("%w: page size %d is not positive", ErrInvalidPageSizes, size)
		}
		if size == c.UISettings.DefaultPageSize {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: default_page_size %d is not one of %v", ErrInvalidPageSizes, c.UISettings.DefaultPageSize, c.UISettings.PageSizes)
	}
	if c.UISettings.MaxVisiblePages < 1 {
		return fmt.Errorf("%w: max_visible_pages must be at least 1", ErrInvalidPageSizes)
	}
	return nil
}

// LogFile returns the TUI log file path
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(Dir(), "gamegrid.log")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			PageSizes:        []int{6, 12, 24, 48},
			DefaultPageSize:  12,
			MaxVisiblePages:  5,
			ShowDescriptions: true,
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
