package services

import (
	"context"

	"go.uber.org/zap"

	"tripway/internal/models/response_models"
	"tripway/pkg/utils"
)

type SummaryServiceInterface interface {
	Summarize(ctx context.Context, prompt string) (*response_models.SummaryResponse, error)
}

type SummaryService struct {
	summarizer utils.SummarizerInterface
	logger     *zap.SugaredLogger
}

// NewSummaryService accepts a nil summarizer; Summarize then reports the
// provider as unavailable instead of failing at startup.
func NewSummaryService(summarizer utils.SummarizerInterface, logger *zap.Logger) SummaryServiceInterface {
	return &SummaryService{
		summarizer: summarizer,
		logger:     logger.Sugar(),
	}
}

func (s *SummaryService) Summarize(ctx context.Context, prompt string) (*response_models.SummaryResponse, error) {
	if s.summarizer == nil {
		return nil, utils.ErrSummarizerUnavailable
	}

	summary, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		s.logger.Errorw("summary generation failed", "provider", s.summarizer.Provider(), "error", err)
		return nil, utils.ErrCollaboratorFailure
	}

	return &response_models.SummaryResponse{
		Summary:  summary,
		Provider: s.summarizer.Provider(),
	}, nil
}
