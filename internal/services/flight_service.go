package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tripway/internal/airports"
	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/pkg/cache"
	"tripway/pkg/ranking"
	"tripway/pkg/serp"
	"tripway/pkg/utils"
)

const (
	flightCacheTTL   = 15 * time.Minute
	maxAlternatives  = 5
	defaultSearchCap = 6
)

type FlightServiceInterface interface {
	SearchFlights(ctx context.Context, req request_models.FlightSearchRequest) (*response_models.FlightSearchResponse, error)
}

type FlightService struct {
	resolver *airports.Resolver
	searcher serp.FlightSearcher
	cache    cache.Cache
	logger   *zap.SugaredLogger
}

func NewFlightService(
	resolver *airports.Resolver,
	searcher serp.FlightSearcher,
	c cache.Cache,
	logger *zap.Logger,
) FlightServiceInterface {
	return &FlightService{
		resolver: resolver,
		searcher: searcher,
		cache:    c,
		logger:   logger.Sugar(),
	}
}

func (s *FlightService) SearchFlights(ctx context.Context, req request_models.FlightSearchRequest) (*response_models.FlightSearchResponse, error) {
	departures := s.resolver.NearestByCoordinates(*req.DepartureLatitude, *req.DepartureLongitude, 1)
	if len(departures) == 0 {
		return nil, utils.ErrResolutionAmbiguous
	}
	departure := departures[0]

	// No geographic fallback here: the only reference coordinates are the
	// departure's, and an arrival airport next to the departure is useless.
	arrival := s.resolver.Resolve(req.ArrivalCity, nil, nil, 1)
	if len(arrival.Airports) == 0 {
		return nil, utils.ErrResolutionAmbiguous
	}
	arrivalAirport := arrival.Airports[0]

	query := serp.FlightQuery{
		DepartureID:  departure.IATA,
		ArrivalID:    arrivalAirport.IATA,
		OutboundDate: req.OutboundDate,
		ReturnDate:   req.ReturnDate,
		TravelClass:  req.TravelClass,
		Currency:     req.Currency,
	}

	results, err := s.searchCached(ctx, query)
	if err != nil {
		s.logger.Errorw("flight search failed",
			"departure", query.DepartureID, "arrival", query.ArrivalID, "error", err)
		return nil, utils.ErrCollaboratorFailure
	}

	candidates := results.All()
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
	scored := ranking.BestFlights(candidates, rankCap)
	if limit == 1 && len(scored) > 1 {
		scored = scored[:1]
	}

	resp := &response_models.FlightSearchResponse{
		Departure: airportRef(departure.Record, ""),
		Arrival:   airportRef(arrivalAirport.Record, arrival.Kind),
	}

	if len(scored) > 0 {
		resp.TopPick = &response_models.FlightPick{
			ScoredFlight: scored[0],
			Description:  "Best flight balancing price and travel time",
			Optimization: flightOptimization(limit),
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

	stats := ranking.DescribeFlights(candidates)
	resp.Stats = &stats

	return resp, nil
}

func flightOptimization(limit int) string {
	w := ranking.DefaultFlightWeights
	if limit == 1 {
		w = ranking.BestFlightWeights
	}
	return fmt.Sprintf("%.0f%% price + %.0f%% duration + %.0f%% emissions",
		w.Price*100, w.Duration*100, w.Emissions*100)
}

func (s *FlightService) searchCached(ctx context.Context, q serp.FlightQuery) (*serp.FlightResults, error) {
	key := fmt.Sprintf("flights:%s:%s:%s:%s:%s:%s",
		q.DepartureID, q.ArrivalID, q.OutboundDate, q.ReturnDate, q.TravelClass, q.Currency)

	if data, ok := s.cache.Get(ctx, key); ok {
		var cached serp.FlightResults
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	results, err := s.searcher.SearchFlights(ctx, q)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(results); err == nil {
		s.cache.Set(ctx, key, data, flightCacheTTL)
	}
	return results, nil
}

func airportRef(r airports.Record, kind airports.MatchKind) response_models.AirportRef {
	return response_models.AirportRef{
		IATA:      r.IATA,
		Name:      r.Name,
		City:      r.City,
		Country:   r.Country,
		MatchKind: kind,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
