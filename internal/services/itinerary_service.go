package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"tripway/internal/models/db_models"
	"tripway/internal/models/request_models"
	"tripway/internal/models/response_models"
	"tripway/internal/repositories"
	"tripway/pkg/geo"
	"tripway/pkg/utils"
)

const (
	clusterRadiusKm  = 5
	fallbackRadiusKm = 10
	nearbyRadiusKm   = 5
)

// attractionCategories are the categories eligible for morning and afternoon
// sightseeing slots.
var attractionCategories = map[string]bool{
	"tourist attractions": true,
	"hiking trails":       true,
	"mountains":           true,
	"viewpoints":          true,
	"temples":             true,
	"parks":               true,
}

var itineraryNotes = []string{
	"Only create itinerary for days with sufficient place data",
	"Places within same day are grouped nearby to save travel time",
	"Recommend booking reservations for high-end restaurants",
	"Bring offline maps and cash",
}

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.Itinerary, error)
	SaveItinerary(ctx context.Context, userID, planID string, itinerary response_models.Itinerary) error
	GetSavedItinerary(ctx context.Context, userID, planID string) (*response_models.SavedItinerary, error)
	ListSavedItineraries(ctx context.Context, userID string) ([]response_models.SavedItinerary, error)
}

type ItineraryService struct {
	placeRepo     repositories.PlaceRepository
	itineraryRepo repositories.ItineraryRepository
	logger        *zap.SugaredLogger
	exportDir     string
}

func NewItineraryService(
	placeRepo repositories.PlaceRepository,
	itineraryRepo repositories.ItineraryRepository,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		placeRepo:     placeRepo,
		itineraryRepo: itineraryRepo,
		logger:        logger.Sugar(),
		exportDir:     ".",
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.Itinerary, error) {
	places, err := s.collectPlaces(ctx, req.City, req.Interests, req.Days)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, utils.ErrDataUnavailable
	}

	pool := orderByCluster(places)

	itinerary := &response_models.Itinerary{
		Destination:   req.City,
		RequestedDays: req.Days,
		GroupSize:     req.GroupSize,
		Budget:        req.Budget,
		Interests:     splitInterests(req.Interests),
		Notes: append(
			[]string{fmt.Sprintf("Itinerary optimized for %d people", maxInt(req.GroupSize, 1))},
			itineraryNotes...,
		),
	}

	used := make(map[string]bool)
	for day := 1; day <= req.Days; day++ {
		schedule := s.scheduleDay(pool, used)
		if schedule == nil {
			break
		}
		schedule.Day = day
		itinerary.Days = append(itinerary.Days, *schedule)
	}

	itinerary.ActualDays = len(itinerary.Days)
	if itinerary.ActualDays < req.Days {
		itinerary.Notes = append(itinerary.Notes,
			fmt.Sprintf("Only created %d/%d days due to insufficient place data", itinerary.ActualDays, req.Days))
	}

	s.exportItinerary(itinerary)

	return itinerary, nil
}

// collectPlaces runs the interest-driven search and widens it until there is
// enough material: roughly two places per day to schedule anything, topping
// up category by category until four per day, then an unfiltered sweep.
func (s *ItineraryService) collectPlaces(ctx context.Context, city, interests string, days int) ([]response_models.Place, error) {
	categories := categoriesForInterests(interests)

	found, err := s.placeRepo.FindByCityAndCategories(ctx, city, categories)
	if err != nil {
		s.logger.Errorw("place lookup failed", "city", city, "error", err)
		return nil, utils.ErrDatabaseError
	}

	places := toResponsePlaces(found)
	seen := make(map[string]bool, len(places))
	for _, p := range places {
		seen[p.Title] = true
	}

	if len(places) < days*2 {
		s.logger.Infow("broadening place search", "city", city, "found", len(places))
		for _, category := range broadeningCategories {
			if len(places) >= days*4 {
				break
			}
			extra, err := s.placeRepo.FindByCityAndCategories(ctx, city, []string{category})
			if err != nil {
				continue
			}
			for _, p := range toResponsePlaces(extra) {
				if !seen[p.Title] {
					places = append(places, p)
					seen[p.Title] = true
				}
			}
		}

		if len(places) < days*2 {
			all, err := s.placeRepo.FindByCity(ctx, city)
			if err == nil {
				for _, p := range toResponsePlaces(all) {
					if !seen[p.Title] {
						places = append(places, p)
						seen[p.Title] = true
					}
				}
			}
		}
	}

	return places, nil
}

// orderByCluster groups places into geographic clusters and flattens them back
// into a pool ordered by cluster size, biggest first. Later rating sorts are
// stable, so place order within equal ratings follows cluster priority.
func orderByCluster(places []response_models.Place) []response_models.Place {
	var located, unlocated []response_models.Place
	for _, p := range places {
		if p.Latitude != nil && p.Longitude != nil {
			located = append(located, p)
		} else {
			unlocated = append(unlocated, p)
		}
	}

	clusters := geo.Cluster(located, clusterRadiusKm)
	sort.SliceStable(clusters, func(i, j int) bool {
		return len(clusters[i]) > len(clusters[j])
	})

	pool := make([]response_models.Place, 0, len(places))
	for _, cluster := range clusters {
		pool = append(pool, cluster...)
	}
	if len(unlocated) > 0 {
		// Coordinate-less places cluster at the wider radius so they still
		// land at the back of the pool in a deterministic order.
		for _, cluster := range geo.Cluster(unlocated, fallbackRadiusKm) {
			pool = append(pool, cluster...)
		}
	}
	return pool
}

// scheduleDay fills one day from the pool. Morning is mandatory; the rest of
// the slots prefer places within walking distance of the morning anchor.
// Returns nil when no place is left to anchor the day on.
func (s *ItineraryService) scheduleDay(pool []response_models.Place, used map[string]bool) *response_models.ItineraryDay {
	remaining := filterUnused(pool, used)
	if len(remaining) == 0 {
		return nil
	}

	attractions := filterByCategories(remaining, attractionCategories)
	restaurants := filterByCategory(remaining, "restaurants")
	cafes := filterByCategory(remaining, "cafes")
	sortByRating(attractions)
	sortByRating(restaurants)
	sortByRating(cafes)

	var morning response_models.Place
	if len(attractions) > 0 {
		morning = attractions[0]
	} else {
		morning = topRated(remaining)
	}
	used[morning.Title] = true

	nearby := placesWithin(remaining, morning, nearbyRadiusKm, used)
	nearbyAttractions := filterByCategories(nearby, attractionCategories)
	nearbyRestaurants := filterByCategory(nearby, "restaurants")
	nearbyCafes := filterByCategory(nearby, "cafes")
	sortByRating(nearbyAttractions)
	sortByRating(nearbyRestaurants)
	sortByRating(nearbyCafes)

	day := &response_models.ItineraryDay{
		Morning: slotFor(morning, "Visit", "09:00-12:00"),
	}

	if lunch, ok := pickFirstUnused(used, nearbyRestaurants, nearbyCafes, restaurants, cafes); ok {
		used[lunch.Title] = true
		day.Lunch = slotFor(lunch, "Lunch at", "12:00-13:30")
	}

	if afternoon, ok := pickAfternoon(used, nearbyAttractions, attractions, remaining); ok {
		used[afternoon.Title] = true
		day.Afternoon = slotFor(afternoon, "Visit", "14:00-17:00")
	}

	if dinner, ok := pickFirstUnused(used, nearbyRestaurants, restaurants, nearbyCafes, cafes); ok {
		used[dinner.Title] = true
		day.Dinner = slotFor(dinner, "Dinner at", "18:00-20:00")
	}

	return day
}

func pickAfternoon(used map[string]bool, nearbyAttractions, attractions, remaining []response_models.Place) (response_models.Place, bool) {
	for _, p := range nearbyAttractions {
		if !used[p.Title] {
			return p, true
		}
	}
	if len(attractions) > 1 && !used[attractions[1].Title] {
		return attractions[1], true
	}
	candidates := filterUnused(remaining, used)
	if len(candidates) == 0 {
		return response_models.Place{}, false
	}
	return topRated(candidates), true
}

func pickFirstUnused(used map[string]bool, groups ...[]response_models.Place) (response_models.Place, bool) {
	for _, group := range groups {
		for _, p := range group {
			if !used[p.Title] {
				return p, true
			}
		}
	}
	return response_models.Place{}, false
}

func slotFor(p response_models.Place, verb, window string) *response_models.DaySlot {
	slot := &response_models.DaySlot{
		Activity: fmt.Sprintf("%s %s", verb, p.Title),
		Location: p.Address,
		Rating:   p.Rating,
		Category: p.Category,
		Time:     window,
	}
	if p.Latitude != nil && p.Longitude != nil {
		slot.Coordinates = &response_models.Coordinates{
			Latitude:  *p.Latitude,
			Longitude: *p.Longitude,
		}
	}
	return slot
}

func placesWithin(places []response_models.Place, anchor response_models.Place, radiusKm float64, used map[string]bool) []response_models.Place {
	var out []response_models.Place
	for _, p := range places {
		if used[p.Title] {
			continue
		}
		if geo.DistanceKmPtr(anchor.Latitude, anchor.Longitude, p.Latitude, p.Longitude) <= radiusKm {
			out = append(out, p)
		}
	}
	return out
}

func filterUnused(places []response_models.Place, used map[string]bool) []response_models.Place {
	var out []response_models.Place
	for _, p := range places {
		if !used[p.Title] {
			out = append(out, p)
		}
	}
	return out
}

func filterByCategory(places []response_models.Place, category string) []response_models.Place {
	var out []response_models.Place
	for _, p := range places {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func filterByCategories(places []response_models.Place, categories map[string]bool) []response_models.Place {
	var out []response_models.Place
	for _, p := range places {
		if categories[p.Category] {
			out = append(out, p)
		}
	}
	return out
}

func sortByRating(places []response_models.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return ratingOf(places[i]) > ratingOf(places[j])
	})
}

func topRated(places []response_models.Place) response_models.Place {
	best := places[0]
	for _, p := range places[1:] {
		if ratingOf(p) > ratingOf(best) {
			best = p
		}
	}
	return best
}

func ratingOf(p response_models.Place) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// exportItinerary writes the finished plan to a local JSON file. Best effort:
// a failed write only costs the note pointing at the file.
func (s *ItineraryService) exportItinerary(itinerary *response_models.Itinerary) {
	name := fmt.Sprintf("%s_itinerary_%ddays.json",
		strings.ToLower(strings.ReplaceAll(itinerary.Destination, " ", "_")),
		itinerary.ActualDays)
	path := s.exportDir + string(os.PathSeparator) + name

	data, err := json.MarshalIndent(itinerary, "", "    ")
	if err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Warnw("failed to export itinerary", "path", path, "error", err)
		return
	}
	itinerary.Notes = append(itinerary.Notes, fmt.Sprintf("Detailed itinerary saved to file: %s", name))
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, userID, planID string, itinerary response_models.Itinerary) error {
	payload, err := json.Marshal(itinerary)
	if err != nil {
		return err
	}

	saved := &db_models.SavedItinerary{
		UserID:      userID,
		PlanID:      planID,
		Destination: itinerary.Destination,
		Interests:   itinerary.Interests,
		Payload:     payload,
	}
	if err := s.itineraryRepo.Save(ctx, saved); err != nil {
		s.logger.Errorw("failed to save itinerary", "user_id", userID, "plan_id", planID, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) GetSavedItinerary(ctx context.Context, userID, planID string) (*response_models.SavedItinerary, error) {
	saved, err := s.itineraryRepo.GetByUserAndPlan(ctx, userID, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if saved == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal(saved.Payload, &itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SavedItinerary{
		PlanID:      saved.PlanID,
		Destination: saved.Destination,
		Interests:   saved.Interests,
		Itinerary:   itinerary,
	}, nil
}

func (s *ItineraryService) ListSavedItineraries(ctx context.Context, userID string) ([]response_models.SavedItinerary, error) {
	saved, err := s.itineraryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedItinerary, 0, len(saved))
	for _, row := range saved {
		var itinerary response_models.Itinerary
		if err := json.Unmarshal(row.Payload, &itinerary); err != nil {
			s.logger.Warnw("skipping unreadable saved itinerary", "plan_id", row.PlanID, "error", err)
			continue
		}
		out = append(out, response_models.SavedItinerary{
			PlanID:      row.PlanID,
			Destination: row.Destination,
			Interests:   row.Interests,
			Itinerary:   itinerary,
		})
	}
	return out, nil
}

func toResponsePlaces(in []db_models.Place) []response_models.Place {
	out := make([]response_models.Place, 0, len(in))
	for _, p := range in {
		out = append(out, response_models.Place{
			Title:     p.Title,
			Category:  p.Category,
			Rating:    p.Rating,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Address:   p.Address,
		})
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
