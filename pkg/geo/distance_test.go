package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Zero(t *testing.T) {
	p := Point{Lng: 104.0657, Lat: 30.6595}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownCities(t *testing.T) {
	// Paris -> London, about 343.5 km on a 6371 km sphere.
	paris := Point{Lng: 2.3522, Lat: 48.8566}
	london := Point{Lng: -0.1278, Lat: 51.5074}
	d := Distance(paris, london)
	assert.InDelta(t, 343556, d, 500)
	assert.InDelta(t, d, Distance(london, paris), 1e-6)
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	a := Point{Lng: 0, Lat: 0}
	b := Point{Lng: 0, Lat: 1}
	assert.InDelta(t, EarthRadius*math.Pi/180, Distance(a, b), 1e-6)
}

func TestDistance_ShortRangeAccuracy(t *testing.T) {
	origin := Point{Lng: 121.4737, Lat: 31.2304}
	for _, want := range []float64{1, 5, 10, 15.3, 20, 100, 2500} {
		got := Distance(origin, OffsetNorth(origin, want))
		assert.InDelta(t, want, got, 0.01, "distance %v", want)
	}
}

func TestInBand_Boundaries(t *testing.T) {
	cases := []struct {
		d    float64
		want error
	}{
		{0, ErrTooClose},
		{9.99, ErrTooClose},
		{10, ErrTooClose},
		{10.0001, nil},
		{15.3, nil},
		{20, nil},
		{20.0001, ErrTooFar},
		{500, ErrTooFar},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InBand(tc.d), "d=%v", tc.d)
	}
}

func TestFromPair(t *testing.T) {
	p, ok := FromPair([]float64{116.39, 39.9})
	require.True(t, ok)
	assert.Equal(t, Point{Lng: 116.39, Lat: 39.9}, p)
	assert.Equal(t, []float64{116.39, 39.9}, p.Pair())

	_, ok = FromPair([]float64{116.39})
	assert.False(t, ok)
	_, ok = FromPair([]float64{181, 0})
	assert.False(t, ok)
	_, ok = FromPair([]float64{0, -90.5})
	assert.False(t, ok)
	_, ok = FromPair([]float64{-180, 90})
	assert.True(t, ok)
}
