// Package serp talks to a SerpAPI-compatible search endpoint for Google
// Flights and Google Hotels results. It is a thin collaborator boundary:
// one bounded synchronous call per search, no retries.
package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tripway/pkg/ranking"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// FlightSearcher and HotelSearcher are what the services consume, so tests
// can substitute fakes for the external provider.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, q FlightQuery) (*FlightResults, error)
}

type HotelSearcher interface {
	SearchHotels(ctx context.Context, q HotelQuery) (*HotelResults, error)
}

type FlightQuery struct {
	DepartureID  string // IATA
	ArrivalID    string // IATA
	OutboundDate string // YYYY-MM-DD
	ReturnDate   string // empty for one-way
	TravelClass  string // 1=Economy .. 4=First
	Currency     string
}

type HotelQuery struct {
	Location     string
	CheckInDate  string // YYYY-MM-DD
	CheckOutDate string // YYYY-MM-DD
	Adults       int
	Children     int
	Currency     string
}

type FlightResults struct {
	BestFlights   []ranking.FlightCandidate `json:"best_flights"`
	OtherFlights  []ranking.FlightCandidate `json:"other_flights"`
	PriceInsights json.RawMessage           `json:"price_insights,omitempty"`
}

// All returns every candidate the provider grouped, best first.
func (r *FlightResults) All() []ranking.FlightCandidate {
	return append(append([]ranking.FlightCandidate{}, r.BestFlights...), r.OtherFlights...)
}

type HotelResults struct {
	Properties []ranking.HotelCandidate `json:"properties"`
}

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *zap.SugaredLogger
}

func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		logger:  logger.Sugar(),
	}
}

func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) (*FlightResults, error) {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", q.DepartureID)
	params.Set("arrival_id", q.ArrivalID)
	params.Set("outbound_date", q.OutboundDate)
	if q.ReturnDate != "" {
		params.Set("type", "1") // round trip
		params.Set("return_date", q.ReturnDate)
	} else {
		params.Set("type", "2") // one way
	}
	if q.TravelClass != "" {
		params.Set("travel_class", q.TravelClass)
	}
	params.Set("currency", orDefault(q.Currency, "USD"))
	params.Set("hl", "en")
	params.Set("gl", "us")

	var results FlightResults
	if err := c.do(ctx, params, &results); err != nil {
		return nil, err
	}
	c.logger.Infow("flight search completed",
		"route", q.DepartureID+"-"+q.ArrivalID,
		"flights", len(results.BestFlights)+len(results.OtherFlights))
	return &results, nil
}

func (c *Client) SearchHotels(ctx context.Context, q HotelQuery) (*HotelResults, error) {
	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", q.Location)
	params.Set("check_in_date", q.CheckInDate)
	params.Set("check_out_date", q.CheckOutDate)
	params.Set("adults", fmt.Sprintf("%d", maxInt(q.Adults, 1)))
	if q.Children > 0 {
		params.Set("children", fmt.Sprintf("%d", q.Children))
	}
	params.Set("currency", orDefault(q.Currency, "USD"))
	params.Set("hl", "en")
	params.Set("gl", "us")

	var results HotelResults
	if err := c.do(ctx, params, &results); err != nil {
		return nil, err
	}
	c.logger.Infow("hotel search completed", "location", q.Location, "hotels", len(results.Properties))
	return &results, nil
}

func (c *Client) do(ctx context.Context, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode search response: %w", err)
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
