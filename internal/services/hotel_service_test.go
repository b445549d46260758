package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripway/internal/models/request_models"
	"tripway/pkg/cache"
	"tripway/pkg/ranking"
	"tripway/pkg/serp"
	"tripway/pkg/utils"
)

type fakeHotelSearcher struct {
	results *serp.HotelResults
	err     error
	calls   int
}

func (f *fakeHotelSearcher) SearchHotels(_ context.Context, _ serp.HotelQuery) (*serp.HotelResults, error) {
	f.calls++
	return f.results, f.err
}

func testHotelCandidates() []ranking.HotelCandidate {
	return []ranking.HotelCandidate{
		{Name: "Grand Palace", RatePerNight: "$320", Rating: fl(4.8), Distance: "1.2 km from center", Amenities: []string{"Pool", "Spa", "Wifi"}},
		{Name: "City Comfort", RatePerNight: "$140", Rating: fl(4.2), Distance: "0.8 km from center", Amenities: []string{"Wifi", "Breakfast"}},
		{Name: "Budget Stay", RatePerNight: "$60", Rating: fl(3.4), Distance: "4.5 km from center", Amenities: []string{"Wifi"}},
	}
}

func newTestHotelService(searcher serp.HotelSearcher) HotelServiceInterface {
	return NewHotelService(searcher, cache.NewMemoryCache(), zap.NewNop())
}

func hotelRequest(limit int) request_models.HotelSearchRequest {
	return request_models.HotelSearchRequest{
		Location:     "Tokyo",
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		Adults:       2,
		Limit:        limit,
	}
}

func TestSearchHotelsRanking(t *testing.T) {
	searcher := &fakeHotelSearcher{results: &serp.HotelResults{Properties: testHotelCandidates()}}
	svc := newTestHotelService(searcher)

	resp, err := svc.SearchHotels(context.Background(), hotelRequest(3))
	require.NoError(t, err)
	require.NotNil(t, resp.TopPick)

	assert.Equal(t, "40% price + 30% rating + 30% location", resp.TopPick.Optimization)
	assert.Len(t, resp.Alternatives, 2)
	for _, alt := range resp.Alternatives {
		assert.GreaterOrEqual(t, alt.Score, resp.TopPick.Score)
	}

	require.NotNil(t, resp.Stats)
	assert.Equal(t, 3, resp.Stats.TotalHotels)
	assert.Equal(t, 1, resp.Stats.PriceTiers.Budget)
	assert.Equal(t, 1, resp.Stats.PriceTiers.MidRange)
	assert.Equal(t, 1, resp.Stats.PriceTiers.Luxury)
}

func TestSearchHotelsCriteriaFilter(t *testing.T) {
	searcher := &fakeHotelSearcher{results: &serp.HotelResults{Properties: testHotelCandidates()}}
	svc := newTestHotelService(searcher)

	req := hotelRequest(3)
	req.MinRating = fl(4.0)
	req.Amenities = []string{"pool"}

	resp, err := svc.SearchHotels(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.TopPick)
	assert.Equal(t, "Grand Palace", resp.TopPick.Name)
	assert.Empty(t, resp.Alternatives)
}

func TestSearchHotelsCriteriaExcludeAll(t *testing.T) {
	searcher := &fakeHotelSearcher{results: &serp.HotelResults{Properties: testHotelCandidates()}}
	svc := newTestHotelService(searcher)

	req := hotelRequest(3)
	req.MaxPrice = fl(10)

	_, err := svc.SearchHotels(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrDataUnavailable)
}

func TestSearchHotelsCachesResults(t *testing.T) {
	searcher := &fakeHotelSearcher{results: &serp.HotelResults{Properties: testHotelCandidates()}}
	svc := newTestHotelService(searcher)

	_, err := svc.SearchHotels(context.Background(), hotelRequest(3))
	require.NoError(t, err)
	_, err = svc.SearchHotels(context.Background(), hotelRequest(3))
	require.NoError(t, err)

	assert.Equal(t, 1, searcher.calls)
}

func TestSearchHotelsProviderFailure(t *testing.T) {
	searcher := &fakeHotelSearcher{err: errors.New("upstream timeout")}
	svc := newTestHotelService(searcher)

	_, err := svc.SearchHotels(context.Background(), hotelRequest(3))
	assert.ErrorIs(t, err, utils.ErrCollaboratorFailure)
}
