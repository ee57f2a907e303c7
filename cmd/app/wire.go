//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/ai-stylist/internal/bootstrap"
	"github.com/yanqian/ai-stylist/internal/domain/auth"
	"github.com/yanqian/ai-stylist/internal/domain/bodyanalysis"
	"github.com/yanqian/ai-stylist/internal/domain/outfit"
	"github.com/yanqian/ai-stylist/internal/domain/trending"
	"github.com/yanqian/ai-stylist/internal/domain/wardrobe"
	"github.com/yanqian/ai-stylist/internal/infra/config"
	httpiface "github.com/yanqian/ai-stylist/internal/interface/http"
	"github.com/yanqian/ai-stylist/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideGenerator,
		provideBodyAnalysisConfig,
		provideTrendingConfig,
		provideOutfitConfig,
		provideWardrobeConfig,
		provideAuthConfig,
		provideTrendStore,
		bodyanalysis.NewService,
		trending.NewService,
		outfit.NewService,
		wardrobe.NewService,
		auth.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
