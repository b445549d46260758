package response_models

import (
	"tripway/internal/airports"
	"tripway/pkg/ranking"
)

type FlightSearchResponse struct {
	Departure    AirportRef             `json:"departure"`
	Arrival      AirportRef             `json:"arrival"`
	TopPick      *FlightPick            `json:"top_pick,omitempty"`
	Alternatives []ranking.ScoredFlight `json:"alternatives,omitempty"`
	Stats        *ranking.FlightStats   `json:"stats,omitempty"`
}

type FlightPick struct {
	ranking.ScoredFlight
	Description  string `json:"description"`
	Optimization string `json:"optimization"`
}

type AirportRef struct {
	IATA      string             `json:"iata"`
	Name      string             `json:"name"`
	City      string             `json:"city"`
	Country   string             `json:"country"`
	MatchKind airports.MatchKind `json:"match_kind,omitempty"`
}

type HotelSearchResponse struct {
	Location     string                `json:"location"`
	TopPick      *HotelPick            `json:"top_pick,omitempty"`
	Alternatives []ranking.ScoredHotel `json:"alternatives,omitempty"`
	Stats        *ranking.HotelStats   `json:"stats,omitempty"`
}

type HotelPick struct {
	ranking.ScoredHotel
	Description  string `json:"description"`
	Optimization string `json:"optimization"`
}

type AirportResolution struct {
	Kind        airports.MatchKind `json:"kind"`
	MatchedCity string             `json:"matched_city,omitempty"`
	Airports    []AirportMatch     `json:"airports"`
}

type AirportMatch struct {
	IATA       string   `json:"iata"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type SummaryResponse struct {
	Summary  string `json:"summary"`
	Provider string `json:"provider"`
}
