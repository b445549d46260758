package geo

// Locatable is anything carrying optional coordinates.
type Locatable interface {
	Coordinate() (lat, lon *float64)
}

// Cluster groups items by proximity using greedy single-linkage absorption:
// the first unassigned item seeds a cluster, then remaining items whose
// minimum distance to any current member is within maxKm are absorbed,
// repeating until a full pass absorbs nothing.
//
// The result is a disjoint partition of the input. The algorithm is order
// dependent: permuting the input can change the grouping. Callers that need
// reproducible output must fix the input order.
func Cluster[T Locatable](items []T, maxKm float64) [][]T {
	if len(items) == 0 {
		return nil
	}

	unassigned := make([]T, len(items))
	copy(unassigned, items)

	var clusters [][]T
	for len(unassigned) > 0 {
		current := []T{unassigned[0]}
		unassigned = unassigned[1:]

		for {
			absorbed := false
			remaining := unassigned[:0]
			for _, cand := range unassigned {
				if minDistanceTo(current, cand) <= maxKm {
					current = append(current, cand)
					absorbed = true
				} else {
					remaining = append(remaining, cand)
				}
			}
			unassigned = remaining
			if !absorbed {
				break
			}
		}

		clusters = append(clusters, current)
	}

	return clusters
}

func minDistanceTo[T Locatable](cluster []T, cand T) float64 {
	candLat, candLon := cand.Coordinate()
	best := DistanceKmPtr(candLat, candLon, nil, nil) // +Inf
	for _, member := range cluster {
		lat, lon := member.Coordinate()
		if d := DistanceKmPtr(candLat, candLon, lat, lon); d < best {
			best = d
		}
	}
	return best
}
