// Package heatmap buckets report locations into S2 cells for the dashboard
// heat layer.
package heatmap

import (
	"slices"

	"github.com/golang/geo/s2"

	"github.com/dtroode/cogedon-server/internal/model"
)

const (
	MinLevel = 0
	MaxLevel = 30
)

type cell struct {
	count int64
	sum   s2.Point
}

// Aggregator accumulates points per S2 cell at a fixed level.
// It is not safe for concurrent use.
type Aggregator struct {
	level int
	cells map[s2.CellID]*cell
}

// NewAggregator clamps level to the valid S2 range.
func NewAggregator(level int) *Aggregator {
	return &Aggregator{
		level: min(max(level, MinLevel), MaxLevel),
		cells: make(map[s2.CellID]*cell),
	}
}

func (a *Aggregator) Add(lat, lng float64) {
	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return
	}

	p := s2.PointFromLatLng(ll)
	id := s2.CellIDFromLatLng(ll).Parent(a.level)

	c, ok := a.cells[id]
	if !ok {
		c = &cell{}
		a.cells[id] = c
	}
	c.count++
	c.sum = s2.Point{Vector: c.sum.Add(p.Vector)}
}

// Points emits one point per cell at the centroid of its members, with
// intensity count/maxCount. Output is ordered by cell id.
func (a *Aggregator) Points() []model.HeatPoint {
	if len(a.cells) == 0 {
		return []model.HeatPoint{}
	}

	ids := make([]s2.CellID, 0, len(a.cells))
	var maxCount int64
	for id, c := range a.cells {
		ids = append(ids, id)
		maxCount = max(maxCount, c.count)
	}
	slices.Sort(ids)

	points := make([]model.HeatPoint, 0, len(ids))
	for _, id := range ids {
		c := a.cells[id]
		centroid := s2.LatLngFromPoint(s2.Point{Vector: c.sum.Normalize()})
		points = append(points, model.HeatPoint{
			Latitude:  centroid.Lat.Degrees(),
			Longitude: centroid.Lng.Degrees(),
			Intensity: float64(c.count) / float64(maxCount),
		})
	}

	return points
}
