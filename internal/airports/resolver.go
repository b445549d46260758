package airports

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"

	"tripway/pkg/geo"
)

const (
	// DefaultSimilarityThreshold is the fuzzy ratio (0-100) a city-name
	// match must reach before it is trusted.
	DefaultSimilarityThreshold = 75

	// geographicFallbackKm bounds the coordinate fallback when a city name
	// cannot be resolved.
	geographicFallbackKm = 100
)

// MatchKind records how a resolution was obtained, so callers can tell a
// true city match from a geographic fallback.
type MatchKind string

const (
	MatchCity       MatchKind = "city"
	MatchGeographic MatchKind = "geographic"
)

// Match is one resolved airport. DistanceKm is set on coordinate searches.
type Match struct {
	Record
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// Resolution is the outcome of a city query. Airports may be empty when the
// name could not be matched and no reference coordinate was supplied.
type Resolution struct {
	Kind        MatchKind `json:"kind,omitempty"`
	MatchedCity string    `json:"matched_city,omitempty"`
	Airports    []Match   `json:"airports"`
}

// Resolver answers airport lookups against an immutable startup-loaded
// table. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	records             []Record
	cities              []string
	SimilarityThreshold int

	logger *zap.SugaredLogger
}

func NewResolver(records []Record, logger *zap.Logger) *Resolver {
	valid := make([]Record, 0, len(records))
	for _, r := range records {
		if validIATA(r.IATA) {
			valid = append(valid, r)
		}
	}
	return &Resolver{
		records:             valid,
		cities:              cityVocabulary(valid),
		SimilarityThreshold: DefaultSimilarityThreshold,
		logger:              logger.Sugar(),
	}
}

// Size reports how many usable airport records are loaded.
func (r *Resolver) Size() int { return len(r.records) }

// NearestByCoordinates returns up to limit civilian airports ordered by
// haversine distance from the given point. Military facilities are skipped
// unless nothing else exists.
func (r *Resolver) NearestByCoordinates(lat, lon float64, limit int) []Match {
	matches := make([]Match, 0, len(r.records))
	for _, rec := range civilianOnly(r.records) {
		d := geo.DistanceKm(lat, lon, rec.Latitude, rec.Longitude)
		matches = append(matches, Match{Record: rec, DistanceKm: &d})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return *matches[i].DistanceKm < *matches[j].DistanceKm
	})
	return capMatches(matches, limit)
}

// ResolveCity matches a free-text city name against the table. The fuzzy
// pass resolves typos against the distinct city vocabulary; if nothing
// clears the threshold, a substring pass over city and airport names is
// tried instead. Candidates are ordered by name priority: international
// before plain airports before everything else.
func (r *Resolver) ResolveCity(city string, limit int) (string, []Match) {
	query := strings.TrimSpace(city)
	if query == "" {
		return "", nil
	}

	if matched, ok := r.fuzzyCity(query); ok {
		var hits []Record
		for _, rec := range r.records {
			if rec.City == matched {
				hits = append(hits, rec)
			}
		}
		r.logger.Debugw("fuzzy city match", "query", query, "matched", matched, "airports", len(hits))
		return matched, prioritize(civilianOnly(hits), limit)
	}

	lower := strings.ToLower(query)
	var hits []Record
	for _, rec := range r.records {
		if strings.Contains(strings.ToLower(rec.City), lower) ||
			strings.Contains(strings.ToLower(rec.Name), lower) {
			hits = append(hits, rec)
		}
	}
	if len(hits) == 0 {
		return "", nil
	}
	return "", prioritize(civilianOnly(hits), limit)
}

// Resolve runs the city path and, when it comes up empty and a reference
// coordinate is available, falls back to a bounded nearest-airport search.
// The Kind field distinguishes the two provenances.
func (r *Resolver) Resolve(city string, refLat, refLon *float64, limit int) Resolution {
	matched, airports := r.ResolveCity(city, limit)
	if len(airports) > 0 {
		return Resolution{Kind: MatchCity, MatchedCity: matched, Airports: airports}
	}

	if refLat != nil && refLon != nil {
		var nearby []Match
		for _, m := range r.NearestByCoordinates(*refLat, *refLon, limit) {
			if *m.DistanceKm <= geographicFallbackKm {
				nearby = append(nearby, m)
			}
		}
		if len(nearby) > 0 {
			r.logger.Infow("city resolution fell back to coordinates",
				"city", city, "airports", len(nearby))
			return Resolution{Kind: MatchGeographic, Airports: nearby}
		}
	}

	return Resolution{Airports: nil}
}

// SuggestCities returns autocomplete suggestions for a partial city name:
// prefix matches first, then substring matches, up to limit.
func (r *Resolver) SuggestCities(q string, limit int) []string {
	query := strings.ToLower(strings.TrimSpace(q))
	if len(query) < 2 {
		return nil
	}

	var prefix, contains []string
	for _, city := range r.cities {
		lower := strings.ToLower(city)
		switch {
		case strings.HasPrefix(lower, query):
			prefix = append(prefix, city)
		case strings.Contains(lower, query):
			contains = append(contains, city)
		}
	}

	suggestions := append(prefix, contains...)
	if limit > 0 && limit < len(suggestions) {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// fuzzyCity returns the vocabulary city with the best similarity ratio, if
// it clears the threshold. The vocabulary is sorted, so ties resolve
// deterministically to the alphabetically-first city.
func (r *Resolver) fuzzyCity(query string) (string, bool) {
	bestScore := 0
	bestCity := ""
	for _, city := range r.cities {
		score := fuzzy.Ratio(strings.ToLower(query), strings.ToLower(city))
		if score > bestScore {
			bestScore = score
			bestCity = city
		}
	}
	if bestScore < r.SimilarityThreshold {
		return "", false
	}
	return bestCity, true
}

// prioritize orders candidates by airport-name priority and truncates.
func prioritize(records []Record, limit int) []Match {
	matches := make([]Match, 0, len(records))
	for _, rec := range records {
		matches = append(matches, Match{Record: rec})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return namePriority(matches[i].Name) < namePriority(matches[j].Name)
	})
	return capMatches(matches, limit)
}

func namePriority(name string) int {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "international"):
		return 0
	case strings.Contains(lower, "airport"):
		return 1
	default:
		return 2
	}
}

func capMatches(matches []Match, limit int) []Match {
	if limit > 0 && limit < len(matches) {
		return matches[:limit]
	}
	return matches
}
