package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	LLM    LLMConfig    `yaml:"llm"`
	Flows  FlowsConfig  `yaml:"flows"`
	Trends TrendsConfig `yaml:"trends"`
	Auth   AuthConfig   `yaml:"auth"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	MaxBodyBytes   int64           `yaml:"maxBodyBytes"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// Provider names accepted by llm.provider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default models used when llm.model is left empty.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// LLMConfig selects and configures the hosted model.
type LLMConfig struct {
	Provider    string        `yaml:"provider"`
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// FlowsConfig bounds flow inputs.
type FlowsConfig struct {
	MaxPhotoBytes    int `yaml:"maxPhotoBytes"`
	MaxWardrobeItems int `yaml:"maxWardrobeItems"`
}

// TrendsConfig controls the trend tally.
type TrendsConfig struct {
	TopLimit int         `yaml:"topLimit"`
	Redis    RedisConfig `yaml:"redis"`
}

// RedisConfig contains connection information for the tally store.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// AuthConfig enables bearer token checks on the API when Secret is set.
type AuthConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	cfg.LLM.applyModelDefault()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = parsed
		}
	}
	if v := os.Getenv("FLOWS_MAX_PHOTO_BYTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Flows.MaxPhotoBytes = parsed
		}
	}
	if v := os.Getenv("FLOWS_MAX_WARDROBE_ITEMS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Flows.MaxWardrobeItems = parsed
		}
	}
	if v := os.Getenv("TRENDS_TOP_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Trends.TopLimit = parsed
		}
	}
	if v := os.Getenv("TRENDS_REDIS_ENABLED"); v != "" {
		cfg.Trends.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("TRENDS_REDIS_ADDR"); v != "" {
		cfg.Trends.Redis.Addr = v
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
}

// applyModelDefault picks the provider's default model once the provider is final.
func (c *LLMConfig) applyModelDefault() {
	if strings.TrimSpace(c.Model) != "" {
		return
	}
	switch c.Provider {
	case ProviderOpenAI:
		c.Model = DefaultOpenAIModel
	case ProviderGemini:
		c.Model = DefaultGeminiModel
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 90 * time.Second,
			MaxBodyBytes: 64 << 20,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				Burst:             10,
			},
		},
		LLM: LLMConfig{
			Provider:    ProviderOpenAI,
			Temperature: 0.4,
			Timeout:     60 * time.Second,
		},
		Flows: FlowsConfig{
			MaxPhotoBytes:    4 << 20,
			MaxWardrobeItems: 12,
		},
		Trends: TrendsConfig{
			TopLimit: 10,
			Redis: RedisConfig{
				Prefix: "trends",
			},
		},
		Auth: AuthConfig{
			Issuer: "ai-stylist",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("http.maxBodyBytes must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider must be %q or %q", ProviderOpenAI, ProviderGemini)
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if c.LLM.Timeout < 0 {
		return errors.New("llm.timeout cannot be negative")
	}
	if c.Flows.MaxPhotoBytes <= 0 {
		return errors.New("flows.maxPhotoBytes must be positive")
	}
	if c.Flows.MaxWardrobeItems < 2 {
		return errors.New("flows.maxWardrobeItems must be at least 2")
	}
	if int64(c.Flows.MaxPhotoBytes) > c.HTTP.MaxBodyBytes {
		return errors.New("flows.maxPhotoBytes cannot exceed http.maxBodyBytes")
	}
	if c.Trends.TopLimit <= 0 {
		return errors.New("trends.topLimit must be positive")
	}
	if c.Trends.Redis.Enabled && strings.TrimSpace(c.Trends.Redis.Addr) == "" {
		return errors.New("trends.redis.addr cannot be empty when redis is enabled")
	}
	return nil
}
