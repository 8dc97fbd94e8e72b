package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации тестового прогона v3test.
type Config struct {
	Harness HarnessConfig `yaml:"harness"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type HarnessConfig struct {
	Tolerance      float32 `yaml:"tolerance"`
	LooseTolerance float32 `yaml:"loose_tolerance"`
	NoiseSeed      int64   `yaml:"noise_seed"`
	NoiseSamples   int     `yaml:"noise_samples"`
	NoiseScale     float32 `yaml:"noise_scale"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type MetricsConfig struct {
	Dump bool `yaml:"dump"`
}

const (
	defaultTolerance      = 1e-5
	defaultLooseTolerance = 1e-4
	defaultSeed           = 42
	defaultSamples        = 64
	defaultScale          = 10
)

// Default возвращает конфигурацию с допусками по умолчанию
func Default() *Config {
	return &Config{
		Harness: HarnessConfig{
			Tolerance:      defaultTolerance,
			LooseTolerance: defaultLooseTolerance,
			NoiseScale:     defaultScale,
		},
		Logging: LoggingConfig{Level: "INFO"},
	}
}

// GetNoiseSeed возвращает сид шума: config -> env V3MATH_SEED -> default
func (h *HarnessConfig) GetNoiseSeed() int64 {
	if h.NoiseSeed != 0 {
		return h.NoiseSeed
	}
	if envVal := os.Getenv("V3MATH_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil && seed != 0 {
			return seed
		}
	}
	return defaultSeed
}

// GetNoiseSamples возвращает число образцов: config -> env V3MATH_SAMPLES -> default
func (h *HarnessConfig) GetNoiseSamples() int {
	return getIntWithEnvFallback(h.NoiseSamples, "V3MATH_SAMPLES", defaultSamples)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configVal int, envVar string, defaultVal int) int {
	if configVal > 0 {
		return configVal
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	return defaultVal
}

// Validate проверяет значения после загрузки
func (c *Config) Validate() error {
	if c.Harness.Tolerance <= 0 {
		return errors.New("harness.tolerance must be positive")
	}
	if c.Harness.LooseTolerance <= 0 {
		return errors.New("harness.loose_tolerance must be positive")
	}
	if c.Harness.NoiseSamples < 0 {
		return errors.New("harness.noise_samples must not be negative")
	}
	if c.Harness.NoiseScale <= 0 {
		return errors.New("harness.noise_scale must be positive")
	}
	return nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV V3MATH_CONFIG или возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("V3MATH_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
