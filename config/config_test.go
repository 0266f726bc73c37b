package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  read_timeout: 2s
logging:
  level: debug
simulation:
  rank_found_probability: 0.25
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 2*time.Second {
		t.Errorf("read_timeout = %v, want 2s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != Default().Server.WriteTimeout {
		t.Errorf("write_timeout should keep its default, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Simulation.RankFoundProbability != 0.25 {
		t.Errorf("rank_found_probability = %v, want 0.25", cfg.Simulation.RankFoundProbability)
	}
	if len(cfg.Simulation.VolumeRanges) != 3 {
		t.Errorf("volume ranges should keep defaults, got %d", len(cfg.Simulation.VolumeRanges))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOCKEYSEO_SERVER_PORT", "7070")
	t.Setenv("HOCKEYSEO_STRATEGY_PROVIDER", "ollama")
	t.Setenv("HOCKEYSEO_STRATEGY_OLLAMA_MODEL", "llama3")
	t.Setenv("HOCKEYSEO_STRATEGY_OLLAMA_TIMEOUT", "3s")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Strategy.Provider != ProviderOllama {
		t.Errorf("provider = %q, want ollama", cfg.Strategy.Provider)
	}
	if cfg.Strategy.Ollama.Model != "llama3" {
		t.Errorf("model = %q, want llama3", cfg.Strategy.Ollama.Model)
	}
	if cfg.Strategy.Ollama.Timeout != 3*time.Second {
		t.Errorf("ollama timeout = %v, want 3s", cfg.Strategy.Ollama.Timeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"probability above one", "simulation:\n  rank_found_probability: 1.5\n"},
		{"zero max rank", "simulation:\n  max_rank: 0\n"},
		{"empty volume range", "simulation:\n  volume_ranges:\n    - terms: [tickets]\n      min: 10\n      max: 10\n"},
		{"unknown provider", "strategy:\n  provider: magic\n"},
		{"negative ollama timeout", "strategy:\n  ollama:\n    timeout: -1s\n"},
		{"malformed yaml", "server: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}

func TestLoadConfigSetsAppConfig(t *testing.T) {
	t.Cleanup(func() { AppConfig = nil })

	if err := LoadConfig(writeConfig(t, "server:\n  port: 8181\n")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if AppConfig == nil || AppConfig.Server.Port != 8181 {
		t.Errorf("AppConfig not populated: %+v", AppConfig)
	}
}
