package engine

import (
	"math"

	"github.com/lixenwraith/cell-osmosis/constants"
)

// ParticleKind distinguishes water from solute
type ParticleKind uint8

const (
	KindWater ParticleKind = iota
	KindSolute
)

func (k ParticleKind) String() string {
	if k == KindSolute {
		return "solute"
	}
	return "water"
}

// Particle is a water or solute molecule, owned by exactly one of State.Interior or State.Exterior
type Particle struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Kind   ParticleKind
}

// NewParticle creates a particle with the fixed radius for its kind
func NewParticle(kind ParticleKind, x, y, vx, vy float64) Particle {
	radius := constants.WaterRadius
	if kind == KindSolute {
		radius = constants.SoluteRadius
	}
	return Particle{X: x, Y: y, Radius: radius, VX: vx, VY: vy, Kind: kind}
}

// IsWater reports whether the particle may cross the membrane
func (p Particle) IsWater() bool {
	return p.Kind == KindWater
}

// DistanceFromCenter returns the Euclidean distance to the cell centre
func (p Particle) DistanceFromCenter() float64 {
	return distanceFromCenter(p.X, p.Y)
}

// Fragment is a static piece shed by a dying cell
type Fragment struct {
	X, Y   float64
	Radius float64
}

func distanceFromCenter(x, y float64) float64 {
	return math.Hypot(x-constants.CellCenterX, y-constants.CellCenterY)
}
