package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripway/internal/models/db_models"
	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/internal/repositories"
	"tripway/pkg/utils"
)

type fakePlaceRepo struct {
	places []db_models.Place
}

func (f *fakePlaceRepo) FindByCityAndCategories(_ context.Context, city string, categories []string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.places {
		if !strings.EqualFold(p.City, city) {
			continue
		}
		for _, c := range categories {
			if strings.Contains(strings.ToLower(p.Category), strings.ToLower(c)) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) FindByCity(_ context.Context, city string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.places {
		if strings.EqualFold(p.City, city) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeItineraryRepo struct {
	saved map[string]*db_models.SavedItinerary
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{saved: make(map[string]*db_models.SavedItinerary)}
}

func (f *fakeItineraryRepo) Save(_ context.Context, s *db_models.SavedItinerary) error {
	f.saved[s.UserID+"|"+s.PlanID] = s
	return nil
}

func (f *fakeItineraryRepo) GetByUserAndPlan(_ context.Context, userID, planID string) (*db_models.SavedItinerary, error) {
	return f.saved[userID+"|"+planID], nil
}

func (f *fakeItineraryRepo) ListByUser(_ context.Context, userID string) ([]db_models.SavedItinerary, error) {
	var out []db_models.SavedItinerary
	for _, s := range f.saved {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func fl(v float64) *float64 { return &v }

func place(title, category string, rating, lat, lon float64) db_models.Place {
	return db_models.Place{
		Title:     title,
		City:      "Da Lat",
		Category:  category,
		Rating:    fl(rating),
		Latitude:  fl(lat),
		Longitude: fl(lon),
		Address:   title + " street",
	}
}

func newTestItineraryService(t *testing.T, placeRepo repositories.PlaceRepository, itineraryRepo *fakeItineraryRepo) *ItineraryService {
	t.Helper()
	return &ItineraryService{
		placeRepo:     placeRepo,
		itineraryRepo: itineraryRepo,
		logger:        zap.NewNop().Sugar(),
		exportDir:     t.TempDir(),
	}
}

func testPlaces() []db_models.Place {
	return []db_models.Place{
		place("Xuan Huong Lake", "tourist attractions", 4.6, 11.9404, 108.4430),
		place("Lang Biang Mountain", "mountains", 4.5, 12.0464, 108.4419),
		place("Datanla Falls", "waterfalls", 4.3, 11.9011, 108.4480),
		place("Linh Phuoc Pagoda", "temples", 4.4, 11.9358, 108.4980),
		place("Crazy House", "tourist attractions", 4.2, 11.9350, 108.4310),
		place("Da Lat Market", "night markets", 4.1, 11.9420, 108.4378),
		place("Goc Ha Thanh", "restaurants", 4.5, 11.9415, 108.4365),
		place("Nha Hang Leguda", "restaurants", 4.3, 11.9390, 108.4420),
		place("An Cafe", "cafes", 4.6, 11.9440, 108.4350),
		place("Me Linh Coffee", "cafes", 4.4, 11.8850, 108.3640),
	}
}

func TestCreateItineraryFillsRequestedDays(t *testing.T) {
	svc := newTestItineraryService(t, &fakePlaceRepo{places: testPlaces()}, newFakeItineraryRepo())

	itinerary, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		City:      "Da Lat",
		Days:      3,
		Interests: "food, culture",
		GroupSize: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 3, itinerary.ActualDays)
	require.Len(t, itinerary.Days, 3)

	seen := make(map[string]bool)
	for _, day := range itinerary.Days {
		require.NotNil(t, day.Morning, "day %d has no morning activity", day.Day)
		for _, slot := range []*response_models.DaySlot{day.Morning, day.Lunch, day.Afternoon, day.Dinner} {
			if slot == nil {
				continue
			}
			assert.False(t, seen[slot.Activity], "activity %q scheduled twice", slot.Activity)
			seen[slot.Activity] = true
		}
	}
}

func TestCreateItinerarySlotRules(t *testing.T) {
	svc := newTestItineraryService(t, &fakePlaceRepo{places: testPlaces()}, newFakeItineraryRepo())

	itinerary, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		City: "Da Lat",
		Days: 1,
	})
	require.NoError(t, err)
	require.Len(t, itinerary.Days, 1)

	day := itinerary.Days[0]
	require.NotNil(t, day.Morning)
	assert.Equal(t, "09:00-12:00", day.Morning.Time)
	assert.True(t, strings.HasPrefix(day.Morning.Activity, "Visit "))
	assert.True(t, attractionCategories[day.Morning.Category])

	require.NotNil(t, day.Lunch)
	assert.Equal(t, "12:00-13:30", day.Lunch.Time)
	assert.True(t, strings.HasPrefix(day.Lunch.Activity, "Lunch at "))

	require.NotNil(t, day.Afternoon)
	assert.Equal(t, "14:00-17:00", day.Afternoon.Time)

	require.NotNil(t, day.Dinner)
	assert.Equal(t, "18:00-20:00", day.Dinner.Time)
	assert.True(t, strings.HasPrefix(day.Dinner.Activity, "Dinner at "))
}

func TestCreateItineraryHighestRatedAttractionGoesFirst(t *testing.T) {
	svc := newTestItineraryService(t, &fakePlaceRepo{places: testPlaces()}, newFakeItineraryRepo())

	itinerary, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		City: "Da Lat",
		Days: 1,
	})
	require.NoError(t, err)

	// Xuan Huong Lake is the best rated eligible attraction.
	assert.Equal(t, "Visit Xuan Huong Lake", itinerary.Days[0].Morning.Activity)
}

func TestCreateItineraryShortensWhenDataRunsOut(t *testing.T) {
	few := []db_models.Place{
		place("Xuan Huong Lake", "tourist attractions", 4.6, 11.9404, 108.4430),
		place("Goc Ha Thanh", "restaurants", 4.5, 11.9415, 108.4365),
	}
	svc := newTestItineraryService(t, &fakePlaceRepo{places: few}, newFakeItineraryRepo())

	itinerary, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		City: "Da Lat",
		Days: 5,
	})
	require.NoError(t, err)
	assert.Less(t, itinerary.ActualDays, 5)
	assert.Equal(t, 5, itinerary.RequestedDays)

	var noted bool
	for _, note := range itinerary.Notes {
		if strings.Contains(note, "due to insufficient place data") {
			noted = true
		}
	}
	assert.True(t, noted, "expected a note about the shortened itinerary")
}

func TestCreateItineraryNoData(t *testing.T) {
	svc := newTestItineraryService(t, &fakePlaceRepo{}, newFakeItineraryRepo())

	_, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		City: "Nowhere",
		Days: 2,
	})
	assert.ErrorIs(t, err, utils.ErrDataUnavailable)
}

func TestSaveAndGetItinerary(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestItineraryService(t, &fakePlaceRepo{places: testPlaces()}, repo)

	itinerary, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		City: "Da Lat",
		Days: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SaveItinerary(context.Background(), "user-1", "plan-1", *itinerary))

	saved, err := svc.GetSavedItinerary(context.Background(), "user-1", "plan-1")
	require.NoError(t, err)
	assert.Equal(t, "plan-1", saved.PlanID)
	assert.Equal(t, "Da Lat", saved.Destination)
	assert.Equal(t, itinerary.ActualDays, saved.Itinerary.ActualDays)

	_, err = svc.GetSavedItinerary(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestListSavedItineraries(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestItineraryService(t, &fakePlaceRepo{places: testPlaces()}, repo)

	itinerary, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		City: "Da Lat",
		Days: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SaveItinerary(context.Background(), "user-1", "plan-1", *itinerary))
	require.NoError(t, svc.SaveItinerary(context.Background(), "user-1", "plan-2", *itinerary))
	require.NoError(t, svc.SaveItinerary(context.Background(), "user-2", "plan-1", *itinerary))

	listed, err := svc.ListSavedItineraries(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 2)

	plans := make(map[string]bool)
	for _, s := range listed {
		plans[s.PlanID] = true
		assert.Equal(t, "Da Lat", s.Destination)
		assert.Equal(t, itinerary.ActualDays, s.Itinerary.ActualDays)
	}
	assert.True(t, plans["plan-1"])
	assert.True(t, plans["plan-2"])

	empty, err := svc.ListSavedItineraries(context.Background(), "user-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

type countingPlaceRepo struct {
	fakePlaceRepo
	categoryCalls [][]string
	cityCalls     int
}

func (c *countingPlaceRepo) FindByCityAndCategories(ctx context.Context, city string, categories []string) ([]db_models.Place, error) {
	c.categoryCalls = append(c.categoryCalls, categories)
	return c.fakePlaceRepo.FindByCityAndCategories(ctx, city, categories)
}

func (c *countingPlaceRepo) FindByCity(ctx context.Context, city string) ([]db_models.Place, error) {
	c.cityCalls++
	return c.fakePlaceRepo.FindByCity(ctx, city)
}

func TestCollectPlacesBroadensThenSweeps(t *testing.T) {
	repo := &countingPlaceRepo{fakePlaceRepo: fakePlaceRepo{places: []db_models.Place{
		place("Lang Biang Mountain", "mountains", 4.5, 12.0464, 108.4419),
		place("Ethnology Museum", "museums", 4.2, 11.9500, 108.4400),
		place("Linh Phuoc Pagoda", "temples", 4.4, 11.9358, 108.4980),
		place("Old Railway Station", "railway station", 4.0, 11.9410, 108.4545),
	}}}
	svc := newTestItineraryService(t, repo, newFakeItineraryRepo())

	// "hiking" matches only the mountain, below the two-per-day floor for
	// two days, so every broadening bucket is queried and the still-short
	// pool triggers one unfiltered sweep.
	places, err := svc.collectPlaces(context.Background(), "Da Lat", "hiking", 2)
	require.NoError(t, err)

	require.Len(t, repo.categoryCalls, 1+len(broadeningCategories))
	for i, bucket := range broadeningCategories {
		assert.Equal(t, []string{bucket}, repo.categoryCalls[i+1])
	}
	assert.Equal(t, 1, repo.cityCalls)

	// The sweep returns every row again; dedup keeps one entry per title.
	require.Len(t, places, 4)
	titles := make(map[string]bool)
	for _, p := range places {
		assert.False(t, titles[p.Title], "place %q collected twice", p.Title)
		titles[p.Title] = true
	}
	assert.True(t, titles["Old Railway Station"], "sweep-only place missing from pool")
}

func TestCollectPlacesBroadeningStopsAtCap(t *testing.T) {
	repo := &countingPlaceRepo{fakePlaceRepo: fakePlaceRepo{places: []db_models.Place{
		place("Lang Biang Mountain", "mountains", 4.5, 12.0464, 108.4419),
		place("Ethnology Museum", "museums", 4.2, 11.9500, 108.4400),
		place("Sculpture Museum", "museums", 4.1, 11.9480, 108.4390),
		place("Coffee Museum", "museums", 4.0, 11.9470, 108.4385),
	}}}
	svc := newTestItineraryService(t, repo, newFakeItineraryRepo())

	// One day: floor 2, cap 4. The museums bucket pushes the pool to the
	// cap, so later buckets and the unfiltered sweep are never queried.
	places, err := svc.collectPlaces(context.Background(), "Da Lat", "hiking", 1)
	require.NoError(t, err)
	assert.Len(t, places, 4)

	require.Greater(t, len(repo.categoryCalls), 1)
	last := repo.categoryCalls[len(repo.categoryCalls)-1]
	assert.Equal(t, []string{"museums"}, last)
	assert.Less(t, len(repo.categoryCalls), 1+len(broadeningCategories))
	assert.Zero(t, repo.cityCalls)
}

func TestCategoriesForInterests(t *testing.T) {
	categories := categoriesForInterests("food, culture")
	assert.Contains(t, categories, "restaurants")
	assert.Contains(t, categories, "night markets")
	assert.Contains(t, categories, "temples")
	assert.Contains(t, categories, "museums")
	// Baseline categories ride along regardless of interests.
	assert.Contains(t, categories, "tourist attractions")

	// Partial matching picks up compound phrases.
	hiking := categoriesForInterests("mountain hiking tours")
	assert.Contains(t, hiking, "hiking trails")

	// No interests falls back to the default sweep.
	assert.Equal(t, defaultCategories, categoriesForInterests(""))
}
