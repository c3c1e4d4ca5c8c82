/*
Package config manages the TOML configuration of pawn.

	[data]
	dir = "data"                # <code>_data.json / <code>_vocab.txt live here
	lexicon = "data/en_lexicon.json"

	[language]
	default = "en"
	analyzer = "morphy"         # auto | morphy | snowball | treetagger

	[morph]
	cache_size = 4096
	treetagger_home = ""

	[server]
	max_limit = 64
	default_pos = "anrsv"
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/pawn/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Data     DataConfig     `toml:"data"`
	Language LanguageConfig `toml:"language"`
	Morph    MorphConfig    `toml:"morph"`
	Server   ServerConfig   `toml:"server"`
}

// DataConfig locates the vocabulary directory and the English lexicon.
type DataConfig struct {
	Dir     string `toml:"dir"`
	Lexicon string `toml:"lexicon"`
}

// LanguageConfig is the language activated at startup.
type LanguageConfig struct {
	Default  string `toml:"default"`
	Analyzer string `toml:"analyzer"`
}

// MorphConfig tunes the morphology backends.
type MorphConfig struct {
	CacheSize      int    `toml:"cache_size"`
	TreeTaggerHome string `toml:"treetagger_home"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit   int    `toml:"max_limit"`
	DefaultPOS string `toml:"default_pos"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:     "data",
			Lexicon: filepath.Join("data", "en_lexicon.json"),
		},
		Language: LanguageConfig{
			Default:  "en",
			Analyzer: "morphy",
		},
		Morph: MorphConfig{
			CacheSize: 4096,
		},
		Server: ServerConfig{
			MaxLimit:   64,
			DefaultPOS: "anrsv",
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. $XDG_CONFIG_HOME/pawn
// 2. ~/.config/pawn
// 3. ~/Library/Application Support/pawn (macOS)
// 4. Current executable dir
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		path := filepath.Join(xdg, "pawn")
		if result := utils.CheckDirStatus(path); result.Writable {
			return path, nil
		}
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "pawn")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "pawn")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [ConfigDir]/config.toml, created with defaults if missing
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file, salvaging valid keys from a broken one
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.fillDefaults()
	return config, nil
}

// fillDefaults restores defaults for values a file set to their zero value.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Data.Dir == "" {
		c.Data.Dir = def.Data.Dir
	}
	if c.Language.Default == "" {
		c.Language.Default = def.Language.Default
	}
	if c.Server.MaxLimit <= 0 {
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Server.DefaultPOS == "" {
		c.Server.DefaultPOS = def.Server.DefaultPOS
	}
	if c.Morph.CacheSize < 0 {
		c.Morph.CacheSize = 0
	}
}

// tryPartialParse keeps the defaults and overrides whatever sections still parse
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "data"); ok {
		extractDataConfig(section, &config.Data)
	}
	if section, ok := utils.ExtractSection(tempConfig, "language"); ok {
		extractLanguageConfig(section, &config.Language)
	}
	if section, ok := utils.ExtractSection(tempConfig, "morph"); ok {
		extractMorphConfig(section, &config.Morph)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	config.fillDefaults()
	return config, nil
}

func extractDataConfig(data map[string]any, cfg *DataConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		cfg.Dir = val
	}
	if val, ok := utils.ExtractString(data, "lexicon"); ok {
		cfg.Lexicon = val
	}
}

func extractLanguageConfig(data map[string]any, cfg *LanguageConfig) {
	if val, ok := utils.ExtractString(data, "default"); ok {
		cfg.Default = val
	}
	if val, ok := utils.ExtractString(data, "analyzer"); ok {
		cfg.Analyzer = val
	}
}

func extractMorphConfig(data map[string]any, cfg *MorphConfig) {
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		cfg.CacheSize = val
	}
	if val, ok := utils.ExtractString(data, "treetagger_home"); ok {
		cfg.TreeTaggerHome = val
	}
}

func extractServerConfig(data map[string]any, cfg *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		cfg.MaxLimit = val
	}
	if val, ok := utils.ExtractString(data, "default_pos"); ok {
		cfg.DefaultPOS = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
