package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	assert.InDelta(t, 0.0, Distance(25.033964, 121.564468, 25.033964, 121.564468), 1e-9)
}

func TestDistance_Symmetric(t *testing.T) {
	d1 := Distance(25.033964, 121.564468, 24.801233, 120.971486)
	d2 := Distance(24.801233, 120.971486, 25.033964, 121.564468)

	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lng1 float64
		lat2, lng2 float64
		expectedKm float64
		deltaKm    float64
	}{
		{
			name: "one hundredth degree of longitude at the equator",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 0.01,
			expectedKm: 1.112,
			deltaKm:    0.01,
		},
		{
			name: "taipei to hsinchu",
			lat1: 25.033964, lng1: 121.564468,
			lat2: 24.801233, lng2: 120.971486,
			expectedKm: 65.0,
			deltaKm:    2.0,
		},
		{
			name: "antipodal points",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 180,
			expectedKm: math.Pi * EarthRadiusKm,
			deltaKm:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedKm, Distance(tt.lat1, tt.lng1, tt.lat2, tt.lng2), tt.deltaKm)
		})
	}
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.True(t, ValidCoordinate(90, -180))

	assert.False(t, ValidCoordinate(90.0001, 0))
	assert.False(t, ValidCoordinate(0, -180.0001))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}
