package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func flight(price float64, durationMin int) FlightCandidate {
	return FlightCandidate{Price: fptr(price), TotalDurationMin: iptr(durationMin)}
}

func TestRankFlightsPriceOnlyWeights(t *testing.T) {
	candidates := []FlightCandidate{
		flight(300, 450),
		flight(100, 600),
		flight(200, 300),
	}

	ranked := RankFlights(candidates, FlightWeights{Price: 1}, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, 100.0, *ranked[0].Price)
	assert.Equal(t, 200.0, *ranked[1].Price)
	assert.Equal(t, 300.0, *ranked[2].Price)
}

func TestRankFlightsScoresWithinUnitInterval(t *testing.T) {
	candidates := []FlightCandidate{
		flight(100, 600),
		flight(950, 120),
		{Price: fptr(400)}, // duration missing
		{},                 // everything missing
	}

	for _, s := range RankFlights(candidates, DefaultFlightWeights, 0) {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
}

func TestRankFlightsMissingPriceScoresAsSampleMax(t *testing.T) {
	candidates := []FlightCandidate{
		{TotalDurationMin: iptr(100)}, // no price
		flight(500, 100),
		flight(100, 100),
	}

	ranked := RankFlights(candidates, FlightWeights{Price: 1}, 0)
	require.Len(t, ranked, 3)

	// The priceless candidate is substituted with the sample maximum, so it
	// ties the $500 flight instead of beating it; the stable sort keeps the
	// tied pair in input order, priceless first.
	assert.Equal(t, 100.0, *ranked[0].Price)
	assert.Nil(t, ranked[1].Price)
	assert.Equal(t, 500.0, *ranked[2].Price)
	assert.Equal(t, ranked[2].Score, ranked[1].Score)
}

func TestRankFlightsEmissionsFallsBackToPercentDifference(t *testing.T) {
	low := FlightCandidate{CarbonEmissions: &CarbonEmissions{DifferencePercent: fptr(-10)}}
	high := FlightCandidate{CarbonEmissions: &CarbonEmissions{TypicalForRoute: fptr(90000)}}

	ranked := RankFlights([]FlightCandidate{high, low}, FlightWeights{Emissions: 1}, 0)
	require.Len(t, ranked, 2)
	// |−10| is far below 90000, so the percent-difference flight wins.
	assert.NotNil(t, ranked[0].CarbonEmissions.DifferencePercent)
}

func TestRankFlightsStableForTies(t *testing.T) {
	a := flight(100, 300)
	b := flight(100, 300)
	b.BookingToken = "second"

	ranked := RankFlights([]FlightCandidate{a, b}, DefaultFlightWeights, 0)
	require.Len(t, ranked, 2)
	assert.Equal(t, "", ranked[0].BookingToken)
	assert.Equal(t, "second", ranked[1].BookingToken)
}

func TestBestFlightsSingleUsesBestWeights(t *testing.T) {
	// Cheap but very slow vs slightly pricier but fast. Under the default
	// policy (price .4 / duration .3) the cheap one wins; under the
	// single-best policy (price .5 / duration .4) it still depends on the
	// spread, so pick numbers where the two policies disagree.
	cheapSlow := flight(100, 1000)
	fastMid := flight(140, 200)
	expensive := flight(400, 900)

	candidates := []FlightCandidate{cheapSlow, fastMid, expensive}

	// price spread 300, duration spread 800.
	// default:  cheapSlow = 0*.4 + 1*.3 = .30 ; fastMid = .1333*.4 + 0*.3 = .0533
	// Both policies pick fastMid here; verify weight switch via explicit scores.
	single := BestFlights(candidates, 1)
	require.Len(t, single, 1)

	expected := RankFlights(candidates, BestFlightWeights, 1)
	assert.Equal(t, expected[0].Score, single[0].Score)

	general := RankFlights(candidates, DefaultFlightWeights, 1)
	assert.NotEqual(t, general[0].Score, single[0].Score)
}

func TestDescribeFlights(t *testing.T) {
	stats := DescribeFlights([]FlightCandidate{
		flight(100, 600),
		flight(200, 300),
		flight(300, 450),
		{}, // missing fields excluded from samples
	})

	assert.Equal(t, 4, stats.TotalFlights)
	assert.Equal(t, 3, stats.Price.Count)
	assert.Equal(t, 100.0, stats.Price.Min)
	assert.Equal(t, 300.0, stats.Price.Max)
	assert.Equal(t, 200.0, stats.Price.Mean)
	assert.Equal(t, 200.0, stats.Price.Median)
	assert.Equal(t, 450.0, stats.Duration.Median)
}

func TestRankFlightsEmptyInput(t *testing.T) {
	assert.Nil(t, RankFlights(nil, DefaultFlightWeights, 5))
}
