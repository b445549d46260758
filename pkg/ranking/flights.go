package ranking

import (
	"math"
	"sort"
)

// CarbonEmissions carries whichever emissions figure the search provider
// returned: an absolute typical value for the route, or a percent difference
// against the route baseline.
type CarbonEmissions struct {
	TypicalForRoute   *float64 `json:"typical_for_this_route,omitempty"`
	DifferencePercent *float64 `json:"difference_percent,omitempty"`
}

type AirportInfo struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
	Time string `json:"time,omitempty"`
}

type FlightLeg struct {
	DepartureAirport AirportInfo `json:"departure_airport"`
	ArrivalAirport   AirportInfo `json:"arrival_airport"`
	Airline          string      `json:"airline,omitempty"`
	FlightNumber     string      `json:"flight_number,omitempty"`
	Airplane         string      `json:"airplane,omitempty"`
}

// FlightCandidate is one raw result from the flight search provider.
// Numeric fields are optional; missing values rank as the worst observed
// extreme rather than erroring or spuriously winning.
type FlightCandidate struct {
	Price            *float64         `json:"price,omitempty"`
	TotalDurationMin *int             `json:"total_duration,omitempty"`
	CarbonEmissions  *CarbonEmissions `json:"carbon_emissions,omitempty"`
	Legs             []FlightLeg      `json:"flights,omitempty"`
	AirlineLogo      string           `json:"airline_logo,omitempty"`
	BookingToken     string           `json:"booking_token,omitempty"`
	Type             string           `json:"type,omitempty"`
}

// emissionsValue resolves the comparable emissions figure: prefer the
// absolute typical-route value, fall back to the magnitude of the percent
// difference, report absence otherwise.
func (f FlightCandidate) emissionsValue() (float64, bool) {
	if f.CarbonEmissions == nil {
		return 0, false
	}
	if f.CarbonEmissions.TypicalForRoute != nil {
		return *f.CarbonEmissions.TypicalForRoute, true
	}
	if f.CarbonEmissions.DifferencePercent != nil {
		return math.Abs(*f.CarbonEmissions.DifferencePercent), true
	}
	return 0, false
}

type FlightWeights struct {
	Price     float64
	Duration  float64
	Emissions float64
}

var (
	// DefaultFlightWeights is the general ranking policy.
	DefaultFlightWeights = FlightWeights{Price: 0.4, Duration: 0.3, Emissions: 0.3}

	// BestFlightWeights is used when the caller wants a single best flight:
	// price and duration dominate, emissions become a tiebreaker.
	BestFlightWeights = FlightWeights{Price: 0.5, Duration: 0.4, Emissions: 0.1}
)

func (w FlightWeights) normalized() FlightWeights {
	total := w.Price + w.Duration + w.Emissions
	if total <= 0 {
		return DefaultFlightWeights
	}
	return FlightWeights{
		Price:     w.Price / total,
		Duration:  w.Duration / total,
		Emissions: w.Emissions / total,
	}
}

// ScoredFlight wraps a candidate with its composite score, lower is better.
type ScoredFlight struct {
	FlightCandidate
	Score float64 `json:"score"`
}

// RankFlights scores candidates under w and returns up to limit of them,
// stably sorted ascending by score. limit <= 0 means no cap.
func RankFlights(candidates []FlightCandidate, w FlightWeights, limit int) []ScoredFlight {
	if len(candidates) == 0 {
		return nil
	}
	w = w.normalized()

	var prices, durations, emissions []float64
	for _, c := range candidates {
		if c.Price != nil {
			prices = append(prices, *c.Price)
		}
		if c.TotalDurationMin != nil {
			durations = append(durations, float64(*c.TotalDurationMin))
		}
		if v, ok := c.emissionsValue(); ok {
			emissions = append(emissions, v)
		}
	}

	minPrice, maxPrice, _ := sampleRange(prices)
	minDur, maxDur, _ := sampleRange(durations)
	minEm, maxEm, _ := sampleRange(emissions)

	scored := make([]ScoredFlight, 0, len(candidates))
	for _, c := range candidates {
		price := maxPrice
		if c.Price != nil {
			price = *c.Price
		}
		duration := maxDur
		if c.TotalDurationMin != nil {
			duration = float64(*c.TotalDurationMin)
		}
		emission := maxEm
		if v, ok := c.emissionsValue(); ok {
			emission = v
		}

		score := normalize(price, minPrice, maxPrice)*w.Price +
			normalize(duration, minDur, maxDur)*w.Duration +
			normalize(emission, minEm, maxEm)*w.Emissions

		scored = append(scored, ScoredFlight{FlightCandidate: c, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score < scored[j].Score })

	if limit > 0 && limit < len(scored) {
		scored = scored[:limit]
	}
	return scored
}

// BestFlights returns the top candidates under the default policy, except
// that limit == 1 switches to the single-best weight set.
func BestFlights(candidates []FlightCandidate, limit int) []ScoredFlight {
	weights := DefaultFlightWeights
	if limit == 1 {
		weights = BestFlightWeights
	}
	return RankFlights(candidates, weights, limit)
}

// FlightStats is the observability summary for a flight candidate set.
type FlightStats struct {
	TotalFlights int            `json:"total_flights"`
	Price        AttributeStats `json:"price"`
	Duration     AttributeStats `json:"duration"`
	Emissions    AttributeStats `json:"emissions"`
}

// DescribeFlights summarizes the raw attributes of a candidate set.
func DescribeFlights(candidates []FlightCandidate) FlightStats {
	var prices, durations, emissions []float64
	for _, c := range candidates {
		if c.Price != nil {
			prices = append(prices, *c.Price)
		}
		if c.TotalDurationMin != nil {
			durations = append(durations, float64(*c.TotalDurationMin))
		}
		if v, ok := c.emissionsValue(); ok {
			emissions = append(emissions, v)
		}
	}
	return FlightStats{
		TotalFlights: len(candidates),
		Price:        describeAttribute(prices),
		Duration:     describeAttribute(durations),
		Emissions:    describeAttribute(emissions),
	}
}
