package airports

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Record is one airport row from the reference dataset. The table is built
// once at startup and never mutated, so it is safe for concurrent reads.
type Record struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IATA      string  `json:"iata"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// openFlights column layout: AirportID, Name, City, Country, IATA, ICAO,
// Latitude, Longitude, Altitude, Timezone, DST, TzDatabaseTimeZone, Type,
// Source. Nulls are encoded as \N.
const (
	colName    = 1
	colCity    = 2
	colCountry = 3
	colIATA    = 4
	colLat     = 6
	colLon     = 7

	openFlightsColumns = 14
	nullSentinel       = "\\N"
)

// Load reads the OpenFlights airports dataset from path, dropping rows
// without a valid 3-letter IATA code or parseable coordinates.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open airport dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse airport dataset: %w", err)
	}

	var records []Record
	for _, row := range rows {
		if len(row) < openFlightsColumns {
			continue
		}
		rec, ok := parseRow(row)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("airport dataset %s yielded no usable rows", path)
	}
	return records, nil
}

func parseRow(row []string) (Record, bool) {
	iata := strings.TrimSpace(row[colIATA])
	if !validIATA(iata) {
		return Record{}, false
	}
	lat, err := strconv.ParseFloat(row[colLat], 64)
	if err != nil {
		return Record{}, false
	}
	lon, err := strconv.ParseFloat(row[colLon], 64)
	if err != nil {
		return Record{}, false
	}
	return Record{
		Name:      row[colName],
		City:      row[colCity],
		Country:   row[colCountry],
		IATA:      strings.ToUpper(iata),
		Latitude:  lat,
		Longitude: lon,
	}, true
}

func validIATA(code string) bool {
	if code == nullSentinel || len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// cityVocabulary returns the distinct, sorted city names of a record set.
func cityVocabulary(records []Record) []string {
	seen := make(map[string]struct{}, len(records))
	var cities []string
	for _, r := range records {
		if r.City == "" {
			continue
		}
		if _, ok := seen[r.City]; ok {
			continue
		}
		seen[r.City] = struct{}{}
		cities = append(cities, r.City)
	}
	sort.Strings(cities)
	return cities
}
