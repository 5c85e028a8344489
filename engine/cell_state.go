package engine

import (
	"github.com/lixenwraith/cell-osmosis/constants"
)

// CellState holds the membrane geometry and vitality
type CellState struct {
	Radius    float64 // [CellMinRadius, CellMaxRadius] while alive
	Health    float64 // [CellMinHealth, CellMaxHealth]
	Apoptotic bool    // One-way until Reset
}

// State is the complete mutable simulation state
type State struct {
	Cell      CellState
	Interior  []Particle
	Exterior  []Particle
	Fragments []Fragment

	// Tallies from the last tick, post-crossing
	WaterInside  int
	SoluteInside int
}

// OsmoticBalance returns water minus weighted solute from the last tally
func (s *State) OsmoticBalance() int {
	return s.WaterInside - constants.SoluteOsmoticWeight*s.SoluteInside
}

// Status returns the qualitative label shown under the counters
func (s *State) Status() string {
	switch {
	case s.Cell.Apoptotic:
		return constants.StatusDead
	case float64(s.WaterInside) > float64(s.SoluteInside)*constants.StatusRatio:
		return constants.StatusSwelling
	case float64(s.SoluteInside) > float64(s.WaterInside)*constants.StatusRatio:
		return constants.StatusShrinking
	default:
		return constants.StatusNormal
	}
}

// Rect is an axis-aligned region in world units
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the half-open rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RetryButton is the hit region of the retry control, live only while apoptotic
var RetryButton = Rect{
	X: constants.RetryButtonX,
	Y: constants.RetryButtonY,
	W: constants.RetryButtonWidth,
	H: constants.RetryButtonHeight,
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
