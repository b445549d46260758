package airports

import "strings"

// militaryKeywords mark facilities that should not be offered for civilian
// travel. Matching is a case-insensitive substring test against the name.
var militaryKeywords = []string{
	"air base", "air force", "military", "naval", "army", "marine",
	"airbase", "afb", "base", "nas", "mcas", "joint base",
}

func isMilitary(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range militaryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// civilianOnly drops military-named records, unless that would empty the
// set entirely, in which case the original set is kept.
func civilianOnly(records []Record) []Record {
	var civilian []Record
	for _, r := range records {
		if !isMilitary(r.Name) {
			civilian = append(civilian, r)
		}
	}
	if len(civilian) == 0 {
		return records
	}
	return civilian
}
