package geo

import "math"

const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance between two points using the
// haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	// Floating point can push a a hair outside [0,1], which would make Sqrt
	// feed Asin a value out of its domain.
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// DistanceKmPtr is the nil-tolerant variant used for records with optional
// coordinates. A missing coordinate on either side yields +Inf so incomplete
// records always lose distance comparisons.
func DistanceKmPtr(lat1, lon1, lat2, lon2 *float64) float64 {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return math.Inf(1)
	}
	return DistanceKm(*lat1, *lon1, *lat2, *lon2)
}
