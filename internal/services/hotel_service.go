package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/pkg/cache"
	"tripway/pkg/ranking"
	"tripway/pkg/serp"
	"tripway/pkg/utils"
)

const hotelCacheTTL = 15 * time.Minute

type HotelServiceInterface interface {
	SearchHotels(ctx context.Context, req request_models.HotelSearchRequest) (*response_models.HotelSearchResponse, error)
}

type HotelService struct {
	searcher serp.HotelSearcher
	cache    cache.Cache
	logger   *zap.SugaredLogger
}

func NewHotelService(searcher serp.HotelSearcher, c cache.Cache, logger *zap.Logger) HotelServiceInterface {
	return &HotelService{
		searcher: searcher,
		cache:    c,
		logger:   logger.Sugar(),
	}
}

func (s *HotelService) SearchHotels(ctx context.Context, req request_models.HotelSearchRequest) (*response_models.HotelSearchResponse, error) {
	query := serp.HotelQuery{
		Location:     req.Location,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Adults:       req.Adults,
		Children:     req.Children,
		Currency:     req.Currency,
	}

	results, err := s.searchCached(ctx, query)
	if err != nil {
		s.logger.Errorw("hotel search failed", "location", req.Location, "error", err)
		return nil, utils.ErrCollaboratorFailure
	}

	candidates := ranking.FilterHotels(results.Properties, ranking.HotelCriteria{
		MinRating:   req.MinRating,
		MaxPrice:    req.MaxPrice,
		MaxDistance: req.MaxDistance,
		Amenities:   req.Amenities,
	})
	if len(candidates) == 0 {
		return nil, utils.ErrDataUnavailable
	}

	limit := req.Limit
	if limit <= 0 {
		limit = maxAlternatives
	}
	rankCap := limit
	if limit > 1 {
		rankCap = minInt(maxInt(limit, defaultSearchCap), len(candidates))
	}
	scored := ranking.RankHotels(candidates, ranking.DefaultHotelWeights, rankCap)
	if limit == 1 && len(scored) > 1 {
		scored = scored[:1]
	}

	resp := &response_models.HotelSearchResponse{Location: req.Location}

	if len(scored) > 0 {
		resp.TopPick = &response_models.HotelPick{
			ScoredHotel:  scored[0],
			Description:  "Best hotel balancing price and quality",
			Optimization: hotelOptimization(),
		}
		others := scored[1:]
		if len(others) > limit-1 {
			others = others[:limit-1]
		}
		if len(others) > maxAlternatives {
			others = others[:maxAlternatives]
		}
		resp.Alternatives = others
	}

	stats := ranking.DescribeHotels(candidates)
	resp.Stats = &stats

	return resp, nil
}

func hotelOptimization() string {
	w := ranking.DefaultHotelWeights
	return fmt.Sprintf("%.0f%% price + %.0f%% rating + %.0f%% location",
		w.Price*100, w.Rating*100, w.Distance*100)
}

func (s *HotelService) searchCached(ctx context.Context, q serp.HotelQuery) (*serp.HotelResults, error) {
	key := fmt.Sprintf("hotels:%s:%s:%s:%d:%d:%s",
		q.Location, q.CheckInDate, q.CheckOutDate, q.Adults, q.Children, q.Currency)

	if data, ok := s.cache.Get(ctx, key); ok {
		var cached serp.HotelResults
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	results, err := s.searcher.SearchHotels(ctx, q)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(results); err == nil {
		s.cache.Set(ctx, key, data, hotelCacheTTL)
	}
	return results, nil
}
