package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/events"
)

// ErrPlacementExhausted is returned when rejection sampling cannot place an exterior particle
var ErrPlacementExhausted = errors.New("exterior particle placement exhausted")

// Reset re-initializes all state: fresh cell, 50 interior particles, 30 exterior water particles
// State is only replaced when every particle could be placed
func (s *Simulation) Reset() error {
	cell := CellState{
		Radius: constants.CellInitialRadius,
		Health: constants.CellInitialHealth,
	}

	interior := make([]Particle, 0, constants.InteriorParticleCount)
	lo := int(constants.CellCenterX - cell.Radius + constants.InteriorSpawnMargin)
	hi := int(constants.CellCenterX + cell.Radius - constants.InteriorSpawnMargin)
	loY := int(constants.CellCenterY - cell.Radius + constants.InteriorSpawnMargin)
	hiY := int(constants.CellCenterY + cell.Radius - constants.InteriorSpawnMargin)
	for i := 0; i < constants.InteriorParticleCount; i++ {
		kind := KindSolute
		if s.rng.Float64() < constants.WaterProbability {
			kind = KindWater
		}
		x := float64(randInt(s.rng, lo, hi))
		y := float64(randInt(s.rng, loY, hiY))
		interior = append(interior, NewParticle(kind, x, y, randUniform(s.rng, -1, 1), randUniform(s.rng, -1, 1)))
	}

	exterior := make([]Particle, 0, constants.ExteriorParticleCount)
	for i := 0; i < constants.ExteriorParticleCount; i++ {
		x, y, err := s.placeOutside(cell.Radius + constants.ExteriorSpawnClearance)
		if err != nil {
			return fmt.Errorf("reset: particle %d: %w", i, err)
		}
		exterior = append(exterior, NewParticle(KindWater, x, y, randUniform(s.rng, -1, 1), randUniform(s.rng, -1, 1)))
	}

	s.State = State{
		Cell:      cell,
		Interior:  interior,
		Exterior:  exterior,
		Fragments: nil,
	}
	s.emit(events.EventCellReset, &events.CellPayload{Radius: cell.Radius, Health: cell.Health})
	return nil
}

// placeOutside draws positions inside the wall margins until one lies farther than minDist from the centre
func (s *Simulation) placeOutside(minDist float64) (float64, float64, error) {
	for attempt := 0; attempt < constants.MaxPlacementAttempts; attempt++ {
		x := float64(randInt(s.rng, constants.ExteriorSpawnMargin, constants.WorldWidth-constants.ExteriorSpawnMargin))
		y := float64(randInt(s.rng, constants.ExteriorSpawnMargin, constants.WorldHeight-constants.ExteriorSpawnMargin))
		if distanceFromCenter(x, y) > minDist {
			return x, y, nil
		}
	}
	return 0, 0, fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, constants.MaxPlacementAttempts)
}
