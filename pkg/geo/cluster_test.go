package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPoint struct {
	name string
	lat  *float64
	lon  *float64
}

func (p testPoint) Coordinate() (*float64, *float64) { return p.lat, p.lon }

func pt(name string, lat, lon float64) testPoint {
	return testPoint{name: name, lat: &lat, lon: &lon}
}

func TestClusterPartitionsInput(t *testing.T) {
	points := []testPoint{
		pt("a", 10.770, 106.700),
		pt("b", 10.772, 106.702), // ~300m from a
		pt("c", 11.950, 108.440), // far away (Da Lat vs Saigon)
		pt("d", 11.952, 108.442),
		pt("e", 10.780, 106.710), // ~1.5km from a
	}

	clusters := Cluster(points, 5)
	require.Len(t, clusters, 2)

	seen := map[string]int{}
	total := 0
	for _, cluster := range clusters {
		for _, p := range cluster {
			seen[p.name]++
			total++
		}
	}
	assert.Equal(t, len(points), total)
	for name, count := range seen {
		assert.Equal(t, 1, count, "point %s assigned more than once", name)
	}
}

func TestClusterChainsAbsorption(t *testing.T) {
	// b is within range of a, c only within range of b: single-linkage must
	// still pull c into the first cluster via the repeated absorption pass.
	points := []testPoint{
		pt("a", 10.000, 106.000),
		pt("c", 10.080, 106.000), // ~8.9km from a, ~4.5km from b
		pt("b", 10.040, 106.000), // ~4.5km from a
	}

	clusters := Cluster(points, 5)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 3)
}

func TestClusterMissingCoordinatesIsolated(t *testing.T) {
	points := []testPoint{
		pt("a", 10.0, 106.0),
		{name: "nocoords"},
		pt("b", 10.001, 106.001),
	}

	clusters := Cluster(points, 5)
	require.Len(t, clusters, 2)
}

func TestClusterEmptyInput(t *testing.T) {
	assert.Nil(t, Cluster([]testPoint{}, 5))
}
