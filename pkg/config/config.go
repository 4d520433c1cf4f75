/*
Package config manages the TOML config for teny services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the default config file name.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Spell   SpellConfig   `toml:"spell"`
	Predict PredictConfig `toml:"predict"`
	CLI     CliConfig     `toml:"cli"`
}

// ServerConfig has options shared by the HTTP and IPC servers.
type ServerConfig struct {
	Addr       string  `toml:"addr"`
	MaxLimit   int     `toml:"max_limit"`
	MaxInput   int     `toml:"max_input"`
	RateLimit  float64 `toml:"rate_limit"`
	RateBurst  int     `toml:"rate_burst"`
	EnableCORS bool    `toml:"enable_cors"`
	Watch      bool    `toml:"watch"`
}

// DataConfig says where the lexicon comes from.
// A non-empty Snapshot wins over Dir.
type DataConfig struct {
	Dir      string `toml:"dir"`
	Snapshot string `toml:"snapshot"`
}

// SpellConfig tunes the approximate matcher.
type SpellConfig struct {
	MinScore       float64 `toml:"min_score"`
	MaxSuggestions int     `toml:"max_suggestions"`
	CacheSize      int     `toml:"cache_size"`
}

// PredictConfig tunes the n-gram predictor and word completion.
type PredictConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MinPrefix    int `toml:"min_prefix"`
	MaxPrefix    int `toml:"max_prefix"`
}

// CliConfig holds repl options.
type CliConfig struct {
	DefaultLimit int    `toml:"default_limit"`
	DefaultOp    string `toml:"default_op"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:       "127.0.0.1:5000",
			MaxLimit:   64,
			MaxInput:   4096,
			RateLimit:  200,
			RateBurst:  50,
			EnableCORS: true,
			Watch:      true,
		},
		Data: DataConfig{
			Dir:      "data",
			Snapshot: "",
		},
		Spell: SpellConfig{
			MinScore:       70,
			MaxSuggestions: 5,
			CacheSize:      2048,
		},
		Predict: PredictConfig{
			DefaultLimit: 5,
			MinPrefix:    1,
			MaxPrefix:    60,
		},
		CLI: CliConfig{
			DefaultLimit: 5,
			DefaultOp:    "check",
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/teny
// 2. ~/Library/Application Support/teny (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", utils.AppName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", utils.AppName)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/teny/config.toml
// 3. Builtin defaults
//
// The returned path is empty when built-in defaults are in use.
func LoadConfigWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, keeping defaults for anything missing.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath), nil
	}
	cfg.sanitize()
	return cfg, nil
}

// tryPartialParse salvages the sections that still decode.
func tryPartialParse(configPath string) *Config {
	cfg := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		extractServerConfig(section, &cfg.Server)
	}
	if section, ok := utils.ExtractSection(raw, "data"); ok {
		extractDataConfig(section, &cfg.Data)
	}
	if section, ok := utils.ExtractSection(raw, "spell"); ok {
		extractSpellConfig(section, &cfg.Spell)
	}
	if section, ok := utils.ExtractSection(raw, "predict"); ok {
		extractPredictConfig(section, &cfg.Predict)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &cfg.CLI)
	}
	cfg.sanitize()
	return cfg
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractString(data, "addr"); ok {
		server.Addr = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_input"); ok {
		server.MaxInput = val
	}
	if val, ok := utils.ExtractFloat64(data, "rate_limit"); ok {
		server.RateLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "rate_burst"); ok {
		server.RateBurst = val
	}
	if val, ok := utils.ExtractBool(data, "enable_cors"); ok {
		server.EnableCORS = val
	}
	if val, ok := utils.ExtractBool(data, "watch"); ok {
		server.Watch = val
	}
}

func extractDataConfig(data map[string]any, d *DataConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		d.Dir = val
	}
	if val, ok := utils.ExtractString(data, "snapshot"); ok {
		d.Snapshot = val
	}
}

func extractSpellConfig(data map[string]any, spell *SpellConfig) {
	if val, ok := utils.ExtractFloat64(data, "min_score"); ok {
		spell.MinScore = val
	}
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		spell.MaxSuggestions = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		spell.CacheSize = val
	}
}

func extractPredictConfig(data map[string]any, p *PredictConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		p.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_prefix"); ok {
		p.MinPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		p.MaxPrefix = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractString(data, "default_op"); ok {
		cli.DefaultOp = val
	}
}

// sanitize puts nonsensical values back to their defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Server.MaxLimit < 1 {
		log.Warnf("server.max_limit=%d is invalid, using %d", c.Server.MaxLimit, def.Server.MaxLimit)
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Server.MaxInput < 1 {
		c.Server.MaxInput = def.Server.MaxInput
	}
	if c.Server.RateBurst < 1 {
		c.Server.RateBurst = def.Server.RateBurst
	}
	if c.Spell.MinScore < 0 || c.Spell.MinScore > 100 {
		log.Warnf("spell.min_score=%v is outside 0..100, using %v", c.Spell.MinScore, def.Spell.MinScore)
		c.Spell.MinScore = def.Spell.MinScore
	}
	if c.Spell.MaxSuggestions < 1 {
		c.Spell.MaxSuggestions = def.Spell.MaxSuggestions
	}
	if c.Predict.DefaultLimit < 1 {
		c.Predict.DefaultLimit = def.Predict.DefaultLimit
	}
	if c.Predict.MinPrefix < 1 {
		c.Predict.MinPrefix = def.Predict.MinPrefix
	}
	if c.Predict.MaxPrefix < c.Predict.MinPrefix {
		c.Predict.MaxPrefix = def.Predict.MaxPrefix
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = def.CLI.DefaultLimit
	}
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
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
