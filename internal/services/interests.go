package services

import "strings"

// interestCategories maps a traveler interest to the place categories it
// should pull in.
var interestCategories = map[string][]string{
	"food":              {"restaurants", "cafes", "night markets"},
	"nature":            {"parks", "mountains", "waterfalls", "lakes", "beaches", "gardens"},
	"hiking":            {"mountains", "hiking trails", "viewpoints"},
	"mountain climbing": {"mountains", "hiking trails", "viewpoints"},
	"culture":           {"temples", "museums", "historical sites", "art galleries"},
	"history":           {"museums", "historical sites", "temples"},
	"shop":              {"shopping malls", "night markets", "souvenir counters"},
	"adventure":         {"hiking trails", "ecotourism areas", "adventure parks", "hot springs"},
	"entertainment":     {"theaters", "zoo", "viewpoints", "swimming pools"},
}

// baselineCategories are always searched on top of whatever the interests map
// to, so every itinerary has attractions and food options to draw from.
var baselineCategories = []string{"tourist attractions", "restaurants", "cafes"}

var foodKeywords = []string{"food", "cuisine", "dining"}

// defaultCategories is used when no interests are given at all.
var defaultCategories = []string{
	"tourist attractions", "restaurants", "parks", "temples",
	"museums", "shopping malls", "viewpoints", "cafes",
}

// broadeningCategories are tried one bucket at a time when the interest-driven
// search comes back too thin.
var broadeningCategories = []string{
	"tourist attractions", "viewpoints", "museums", "temples",
	"parks", "shopping", "entertainment", "cultural sites",
}

// splitInterests parses the comma-separated interests string into a cleaned,
// lowercased list.
func splitInterests(interests string) []string {
	if strings.TrimSpace(interests) == "" {
		return nil
	}
	parts := strings.Split(interests, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// categoriesForInterests expands interests into search categories. Unknown
// interests fall through substring matching against the known keys and then
// word-by-word matching, so "mountain hiking tours" still maps to the hiking
// categories.
func categoriesForInterests(interests string) []string {
	list := splitInterests(interests)
	if len(list) == 0 {
		return append([]string(nil), defaultCategories...)
	}

	var categories []string
	for _, interest := range list {
		if mapped, ok := interestCategories[interest]; ok {
			categories = append(categories, mapped...)
			continue
		}

		matched := false
		for key, mapped := range interestCategories {
			if strings.Contains(key, interest) || strings.Contains(interest, key) {
				categories = append(categories, mapped...)
				matched = true
			}
		}
		if matched {
			continue
		}

		for _, word := range strings.Fields(interest) {
			for key, mapped := range interestCategories {
				if strings.Contains(key, word) || strings.Contains(word, key) {
					categories = append(categories, mapped...)
				}
			}
		}
	}

	categories = append(categories, baselineCategories...)

	lowered := strings.ToLower(interests)
	for _, kw := range foodKeywords {
		if strings.Contains(lowered, kw) {
			categories = append(categories, "night markets", "cafes", "restaurants")
			break
		}
	}

	return dedupeStrings(categories)
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
