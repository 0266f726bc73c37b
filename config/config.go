package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. HOCKEYSEO_SERVER_PORT overrides server.port.
const EnvPrefix = "HOCKEYSEO"

// ServerConfig defines the HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// VolumeRange is a half-open [Min, Max) search volume range applied to
// keywords containing any of Terms.
type VolumeRange struct {
	Terms []string `yaml:"terms"`
	Min   int      `yaml:"min"`
	Max   int      `yaml:"max"`
}

// SimulationConfig tunes the simulated data source.
type SimulationConfig struct {
	RankFoundProbability float64       `yaml:"rank_found_probability"`
	MaxRank              int           `yaml:"max_rank"`
	Seed                 uint64        `yaml:"seed"`
	VolumeRanges         []VolumeRange `yaml:"volume_ranges"`
	DefaultVolume        VolumeRange   `yaml:"default_volume"`
}

// OllamaConfig defines the Ollama configuration.
type OllamaConfig struct {
	Host            string        `yaml:"host"`
	Model           string        `yaml:"model"`
	MaxPromptLength int           `yaml:"max_prompt_length"`
	Timeout         time.Duration `yaml:"timeout"`
}

// StrategyConfig selects how the AI-search strategy text is produced.
type StrategyConfig struct {
	Provider string       `yaml:"provider"`
	Ollama   OllamaConfig `yaml:"ollama"`
}

// Config is the top-level configuration struct.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Simulation SimulationConfig `yaml:"simulation"`
	Strategy   StrategyConfig   `yaml:"strategy"`
}

// Strategy providers.
const (
	ProviderStatic = "static"
	ProviderOllama = "ollama"
)

// AppConfig holds the loaded configuration.
var AppConfig *Config

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		Simulation: SimulationConfig{
			RankFoundProbability: 0.6,
			MaxRank:              10,
			VolumeRanges: []VolumeRange{
				{Terms: []string{"tickets", "cheap"}, Min: 200, Max: 1000},
				{Terms: []string{"first time", "what to expect"}, Min: 150, Max: 550},
				{Terms: []string{"parking"}, Min: 100, Max: 400},
			},
			DefaultVolume: VolumeRange{Min: 50, Max: 250},
		},
		Strategy: StrategyConfig{
			Provider: ProviderStatic,
			Ollama: OllamaConfig{
				Host:            "http://127.0.0.1:11434",
				Model:           "gemma3:latest",
				MaxPromptLength: 4000,
				Timeout:         5 * time.Second,
			},
		},
	}
}

// LoadConfig loads the configuration from path, then applies .env and
// HOCKEYSEO_* environment overrides. A missing file is not an error.
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load is LoadConfig without touching AppConfig.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		logrus.Warnf("Config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using OS environment")
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.IsSet("server.port") {
		cfg.Server.Port = v.GetInt("server.port")
	}
	if v.IsSet("server.read_timeout") {
		cfg.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	}
	if v.IsSet("server.write_timeout") {
		cfg.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	}
	if v.IsSet("server.shutdown_timeout") {
		cfg.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")
	}
	if v.IsSet("server.max_body_bytes") {
		cfg.Server.MaxBodyBytes = v.GetInt64("server.max_body_bytes")
	}
	if v.IsSet("logging.level") {
		cfg.Logging.Level = v.GetString("logging.level")
	}
	if v.IsSet("logging.format") {
		cfg.Logging.Format = v.GetString("logging.format")
	}
	if v.IsSet("logging.output") {
		cfg.Logging.Output = v.GetString("logging.output")
	}
	if v.IsSet("simulation.rank_found_probability") {
		cfg.Simulation.RankFoundProbability = v.GetFloat64("simulation.rank_found_probability")
	}
	if v.IsSet("simulation.max_rank") {
		cfg.Simulation.MaxRank = v.GetInt("simulation.max_rank")
	}
	if v.IsSet("simulation.seed") {
		cfg.Simulation.Seed = v.GetUint64("simulation.seed")
	}
	if v.IsSet("strategy.provider") {
		cfg.Strategy.Provider = v.GetString("strategy.provider")
	}
	if v.IsSet("strategy.ollama.host") {
		cfg.Strategy.Ollama.Host = v.GetString("strategy.ollama.host")
	}
	if v.IsSet("strategy.ollama.model") {
		cfg.Strategy.Ollama.Model = v.GetString("strategy.ollama.model")
	}
	if v.IsSet("strategy.ollama.timeout") {
		cfg.Strategy.Ollama.Timeout = v.GetDuration("strategy.ollama.timeout")
	}
}

// Validate checks the values that would otherwise break request handling.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	sim := c.Simulation
	if sim.RankFoundProbability < 0 || sim.RankFoundProbability > 1 {
		return fmt.Errorf("simulation.rank_found_probability %.2f not in [0,1]", sim.RankFoundProbability)
	}
	if sim.MaxRank < 1 {
		return fmt.Errorf("simulation.max_rank must be at least 1, got %d", sim.MaxRank)
	}
	for i, r := range sim.VolumeRanges {
		if len(r.Terms) == 0 {
			return fmt.Errorf("simulation.volume_ranges[%d] has no terms", i)
		}
		if r.Min < 0 || r.Max <= r.Min {
			return fmt.Errorf("simulation.volume_ranges[%d] invalid range [%d,%d)", i, r.Min, r.Max)
		}
	}
	if d := sim.DefaultVolume; d.Min < 0 || d.Max <= d.Min {
		return fmt.Errorf("simulation.default_volume invalid range [%d,%d)", d.Min, d.Max)
	}
	if c.Strategy.Ollama.Timeout < 0 {
		return fmt.Errorf("strategy.ollama.timeout must not be negative, got %v", c.Strategy.Ollama.Timeout)
	}
	switch strings.ToLower(c.Strategy.Provider) {
	case ProviderStatic, ProviderOllama:
	default:
		return fmt.Errorf("unknown strategy.provider %q", c.Strategy.Provider)
	}
	return nil
}
