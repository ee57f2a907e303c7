package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/ai-stylist/internal/domain/auth"
	"github.com/yanqian/ai-stylist/internal/domain/bodyanalysis"
	"github.com/yanqian/ai-stylist/internal/domain/flow"
	"github.com/yanqian/ai-stylist/internal/domain/outfit"
	"github.com/yanqian/ai-stylist/internal/domain/trending"
	"github.com/yanqian/ai-stylist/internal/domain/wardrobe"
	"github.com/yanqian/ai-stylist/internal/infra/config"
	"github.com/yanqian/ai-stylist/internal/infra/llm/chatgpt"
	"github.com/yanqian/ai-stylist/internal/infra/llm/gemini"
	"github.com/yanqian/ai-stylist/internal/infra/trendstore"
)

func provideGenerator(cfg *config.Config, logger *slog.Logger) (flow.Generator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Timeout)
		if err != nil {
			return nil, err
		}
		logger.Info("gemini generator enabled", "model", cfg.LLM.Model)
		return gemini.NewGenerator(client.Models, cfg.LLM.Model), nil
	case config.ProviderOpenAI:
		client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
		if err != nil {
			return nil, err
		}
		logger.Info("openai generator enabled", "model", cfg.LLM.Model)
		return chatgpt.NewGenerator(client, cfg.LLM.Model), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
}

func provideBodyAnalysisConfig(cfg *config.Config) bodyanalysis.Config {
	return bodyanalysis.Config{
		Temperature:   cfg.LLM.Temperature,
		MaxPhotoBytes: cfg.Flows.MaxPhotoBytes,
	}
}

func provideTrendingConfig(cfg *config.Config) trending.Config {
	return trending.Config{
		Temperature:   cfg.LLM.Temperature,
		MaxPhotoBytes: cfg.Flows.MaxPhotoBytes,
		TopLimit:      cfg.Trends.TopLimit,
	}
}

func provideOutfitConfig(cfg *config.Config) outfit.Config {
	return outfit.Config{Temperature: cfg.LLM.Temperature}
}

func provideWardrobeConfig(cfg *config.Config) wardrobe.Config {
	return wardrobe.Config{
		Temperature:   cfg.LLM.Temperature,
		MaxPhotoBytes: cfg.Flows.MaxPhotoBytes,
		MaxItems:      cfg.Flows.MaxWardrobeItems,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret: cfg.Auth.Secret,
		Issuer: cfg.Auth.Issuer,
	}
}

func provideTrendStore(cfg *config.Config, logger *slog.Logger) (trending.Store, func()) {
	noop := func() {}
	if !cfg.Trends.Redis.Enabled {
		return trendstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return trendstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return trendstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return trendstore.NewMemoryStore(), noop
	}
	logger.Info("trend valkey store enabled", "addr", cfg.Trends.Redis.Addr)
	return trendstore.NewValkeyStore(client, cfg.Trends.Redis.Prefix), client.Close
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Trends.Redis.Addr, "://") {
		return valkey.ParseURL(cfg.Trends.Redis.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Trends.Redis.Addr}}, nil
}
