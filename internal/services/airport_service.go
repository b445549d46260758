package services

import (
	"context"

	"tripway/internal/airports"
	"tripway/internal/models/response_models"
	"tripway/pkg/utils"
)

type AirportServiceInterface interface {
	NearestAirports(ctx context.Context, lat, lon float64, limit int) ([]response_models.AirportMatch, error)
	ResolveCity(ctx context.Context, city string, refLat, refLon *float64, limit int) (*response_models.AirportResolution, error)
	SuggestCities(ctx context.Context, query string, limit int) []string
}

type AirportService struct {
	resolver *airports.Resolver
}

func NewAirportService(resolver *airports.Resolver) AirportServiceInterface {
	return &AirportService{resolver: resolver}
}

func (s *AirportService) NearestAirports(_ context.Context, lat, lon float64, limit int) ([]response_models.AirportMatch, error) {
	matches := s.resolver.NearestByCoordinates(lat, lon, limit)
	if len(matches) == 0 {
		return nil, utils.ErrDataUnavailable
	}
	return toAirportMatches(matches), nil
}

func (s *AirportService) ResolveCity(_ context.Context, city string, refLat, refLon *float64, limit int) (*response_models.AirportResolution, error) {
	resolution := s.resolver.Resolve(city, refLat, refLon, limit)
	if len(resolution.Airports) == 0 {
		return nil, utils.ErrResolutionAmbiguous
	}
	return &response_models.AirportResolution{
		Kind:        resolution.Kind,
		MatchedCity: resolution.MatchedCity,
		Airports:    toAirportMatches(resolution.Airports),
	}, nil
}

func (s *AirportService) SuggestCities(_ context.Context, query string, limit int) []string {
	return s.resolver.SuggestCities(query, limit)
}

func toAirportMatches(in []airports.Match) []response_models.AirportMatch {
	out := make([]response_models.AirportMatch, 0, len(in))
	for _, m := range in {
		out = append(out, response_models.AirportMatch{
			IATA:       m.IATA,
			Name:       m.Name,
			City:       m.City,
			Country:    m.Country,
			Latitude:   m.Latitude,
			Longitude:  m.Longitude,
			DistanceKm: m.DistanceKm,
		})
	}
	return out
}
