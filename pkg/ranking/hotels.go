package ranking

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// HotelCandidate is one raw result from the hotel search provider. Rate and
// distance arrive as display strings ("$1,240", "2.1 km") and are parsed
// with documented defaults instead of failing the record.
type HotelCandidate struct {
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	RatePerNight string   `json:"rate_per_night,omitempty"`
	Rating       *float64 `json:"overall_rating,omitempty"`
	Reviews      int      `json:"reviews,omitempty"`
	Distance     string   `json:"distance,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Address      string   `json:"address,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	HotelClass   string   `json:"hotel_class,omitempty"`
	Description  string   `json:"description,omitempty"`
	Images       []string `json:"images,omitempty"`
	Link         string   `json:"link,omitempty"`
}

const neutralRating = 3.0

// priceValue strips every non-digit character from the currency-formatted
// rate. Absence is reported so the caller can substitute the sample worst.
func (h HotelCandidate) priceValue() (float64, bool) {
	var digits strings.Builder
	for _, r := range h.RatePerNight {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}

// ratingValue defaults to a neutral mid-scale rating so unrated hotels are
// not pinned to the bottom.
func (h HotelCandidate) ratingValue() float64 {
	if h.Rating == nil || *h.Rating == 0 {
		return neutralRating
	}
	return *h.Rating
}

// distanceValue parses the leading number of the distance display string.
// Absence defaults to 0: unknown distance is assumed close, a deliberate
// modeling choice rather than a worst-case penalty.
func (h HotelCandidate) distanceValue() float64 {
	fields := strings.Fields(h.Distance)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	}), 64)
	if err != nil {
		return 0
	}
	return v
}

type HotelWeights struct {
	Price    float64
	Rating   float64
	Distance float64
}

var DefaultHotelWeights = HotelWeights{Price: 0.4, Rating: 0.3, Distance: 0.3}

func (w HotelWeights) normalized() HotelWeights {
	total := w.Price + w.Rating + w.Distance
	if total <= 0 {
		return DefaultHotelWeights
	}
	return HotelWeights{
		Price:    w.Price / total,
		Rating:   w.Rating / total,
		Distance: w.Distance / total,
	}
}

// ScoredHotel wraps a candidate with its composite score, lower is better.
type ScoredHotel struct {
	HotelCandidate
	Score float64 `json:"score"`
}

// RankHotels scores candidates under w and returns up to limit of them,
// stably sorted ascending by score. limit <= 0 means no cap.
func RankHotels(candidates []HotelCandidate, w HotelWeights, limit int) []ScoredHotel {
	if len(candidates) == 0 {
		return nil
	}
	w = w.normalized()

	var prices, ratings, distances []float64
	for _, c := range candidates {
		if p, ok := c.priceValue(); ok {
			prices = append(prices, p)
		}
		ratings = append(ratings, c.ratingValue())
		distances = append(distances, c.distanceValue())
	}

	minPrice, maxPrice, _ := sampleRange(prices)
	minRating, maxRating, _ := sampleRange(ratings)
	minDist, maxDist, _ := sampleRange(distances)

	scored := make([]ScoredHotel, 0, len(candidates))
	for _, c := range candidates {
		price := maxPrice
		if p, ok := c.priceValue(); ok {
			price = p
		}

		// Rating counts inverted: higher rating means a lower (better)
		// contribution under the ascending composite.
		ratingScore := 0.0
		if maxRating > minRating {
			ratingScore = (maxRating - c.ratingValue()) / (maxRating - minRating)
		}

		score := normalize(price, minPrice, maxPrice)*w.Price +
			ratingScore*w.Rating +
			normalize(c.distanceValue(), minDist, maxDist)*w.Distance

		scored = append(scored, ScoredHotel{HotelCandidate: c, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score < scored[j].Score })

	if limit > 0 && limit < len(scored) {
		scored = scored[:limit]
	}
	return scored
}

// HotelCriteria filters a candidate set before ranking.
type HotelCriteria struct {
	MinRating   *float64
	MaxPrice    *float64
	MaxDistance *float64
	Amenities   []string
}

// FilterHotels keeps candidates satisfying every supplied criterion.
func FilterHotels(candidates []HotelCandidate, criteria HotelCriteria) []HotelCandidate {
	var kept []HotelCandidate
	for _, c := range candidates {
		if criteria.MinRating != nil && c.ratingValue() < *criteria.MinRating {
			continue
		}
		if criteria.MaxPrice != nil {
			price, ok := c.priceValue()
			if !ok || price > *criteria.MaxPrice {
				continue
			}
		}
		if criteria.MaxDistance != nil && c.distanceValue() > *criteria.MaxDistance {
			continue
		}
		if !hasAmenities(c.Amenities, criteria.Amenities) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func hasAmenities(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	index := make(map[string]struct{}, len(have))
	for _, a := range have {
		index[strings.ToLower(a)] = struct{}{}
	}
	for _, w := range want {
		if _, ok := index[strings.ToLower(w)]; !ok {
			return false
		}
	}
	return true
}

// PriceTiers buckets nightly rates for observability.
type PriceTiers struct {
	Budget   int `json:"budget_count"`    // < 100
	MidRange int `json:"mid_range_count"` // 100 - 300
	Luxury   int `json:"luxury_count"`    // >= 300
}

// RatingTiers buckets overall ratings for observability.
type RatingTiers struct {
	Excellent int `json:"excellent_count"` // >= 4.5
	VeryGood  int `json:"very_good_count"` // 4.0 - 4.5
	Good      int `json:"good_count"`      // 3.5 - 4.0
	Fair      int `json:"fair_count"`      // < 3.5
}

// HotelStats is the observability summary for a hotel candidate set.
type HotelStats struct {
	TotalHotels int            `json:"total_hotels"`
	Price       AttributeStats `json:"price"`
	Rating      AttributeStats `json:"rating"`
	Distance    AttributeStats `json:"distance"`
	PriceTiers  PriceTiers     `json:"price_tiers"`
	RatingTiers RatingTiers    `json:"rating_tiers"`
}

// DescribeHotels summarizes the raw attributes of a candidate set. Tier
// counts only include records where the attribute was actually present.
func DescribeHotels(candidates []HotelCandidate) HotelStats {
	var prices, ratings, distances []float64
	stats := HotelStats{TotalHotels: len(candidates)}

	for _, c := range candidates {
		if p, ok := c.priceValue(); ok {
			prices = append(prices, p)
			switch {
			case p < 100:
				stats.PriceTiers.Budget++
			case p < 300:
				stats.PriceTiers.MidRange++
			default:
				stats.PriceTiers.Luxury++
			}
		}
		if c.Rating != nil && *c.Rating > 0 {
			r := *c.Rating
			ratings = append(ratings, r)
			switch {
			case r >= 4.5:
				stats.RatingTiers.Excellent++
			case r >= 4.0:
				stats.RatingTiers.VeryGood++
			case r >= 3.5:
				stats.RatingTiers.Good++
			default:
				stats.RatingTiers.Fair++
			}
		}
		if d := c.distanceValue(); d > 0 {
			distances = append(distances, d)
		}
	}

	stats.Price = describeAttribute(prices)
	stats.Rating = describeAttribute(ratings)
	stats.Distance = describeAttribute(distances)
	return stats
}
