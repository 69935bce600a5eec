package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_Points(t *testing.T) {
	a := NewAggregator(10)

	// Three reports around the Santo Domingo colonial zone, one in Santiago.
	a.Add(18.4735, -69.8840)
	a.Add(18.4736, -69.8841)
	a.Add(18.4737, -69.8839)
	a.Add(19.4517, -70.6970)

	points := a.Points()
	require.Len(t, points, 2)

	var dense, sparse int
	for i, p := range points {
		if p.Intensity == 1 {
			dense = i
		} else {
			sparse = i
		}
	}

	assert.InDelta(t, 18.4736, points[dense].Latitude, 1e-3)
	assert.InDelta(t, -69.8840, points[dense].Longitude, 1e-3)
	assert.InDelta(t, 1.0/3.0, points[sparse].Intensity, 1e-9)
	assert.InDelta(t, 19.4517, points[sparse].Latitude, 1e-6)
}

func TestAggregator_Empty(t *testing.T) {
	points := NewAggregator(13).Points()
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestAggregator_SkipsInvalidCoordinates(t *testing.T) {
	a := NewAggregator(13)
	a.Add(95, 10)
	a.Add(10, 10)

	assert.Len(t, a.Points(), 1)
}

func TestNewAggregator_ClampsLevel(t *testing.T) {
	assert.Equal(t, MaxLevel, NewAggregator(99).level)
	assert.Equal(t, MinLevel, NewAggregator(-1).level)
}
