package itineraryfx

import (
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripway/internal/api/controllers"
	"tripway/internal/infra"
	"tripway/internal/repositories"
	"tripway/internal/services"
	"tripway/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService,
	provideSummarizer,
	provideSummaryService,
	controllers.NewItineraryController,
)

func provideItineraryService(
	placeRepo repositories.PlaceRepository,
	itineraryRepo repositories.ItineraryRepository,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(placeRepo, itineraryRepo, logger)
}

// provideSummarizer returns nil when no provider key is configured; the
// summary endpoint then responds 503 instead of blocking startup.
func provideSummarizer(cfg *infra.Config) utils.SummarizerInterface {
	apiKey := cfg.OpenAIKey
	if cfg.SummaryProvider == "gemini" {
		apiKey = cfg.GeminiKey
	}
	if apiKey == "" {
		return nil
	}

	summarizer, err := utils.NewSummarizer(cfg.SummaryProvider, apiKey, cfg.SummaryModel)
	if err != nil {
		log.Printf("Summarizer unavailable: %v", err)
		return nil
	}
	return summarizer
}

func provideSummaryService(summarizer utils.SummarizerInterface, logger *zap.Logger) services.SummaryServiceInterface {
	return services.NewSummaryService(summarizer, logger)
}
