package engine

import (
	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/events"
)

// Tick advances the simulation by one frame
// Order: interior motion and membrane, tally, exterior motion and absorption, osmosis, apoptosis animation
func (s *Simulation) Tick() {
	s.frame++
	st := &s.State
	// Apoptosis can only begin inside this tick, so the animation starts on the next one
	wasApoptotic := st.Cell.Apoptotic

	s.updateInterior()
	s.updateExterior()

	if !wasApoptotic {
		s.applyOsmosis()
		return
	}

	if st.Cell.Radius > constants.ApoptosisMinRadius {
		st.Cell.Radius -= constants.ApoptosisShrinkPerTick
		if s.rng.Float64() < constants.FragmentProbability {
			s.shedFragment()
		}
	}
}

// updateInterior moves interior particles, lets water escape, bounces solute and tallies what stays
func (s *Simulation) updateInterior() {
	st := &s.State
	alive := !st.Cell.Apoptotic
	water, solute := 0, 0

	// Compact in place: write index never passes read index
	kept := st.Interior[:0]
	for _, p := range st.Interior {
		p.X += p.VX
		p.Y += p.VY

		if alive && p.DistanceFromCenter()+p.Radius > st.Cell.Radius {
			if p.IsWater() {
				st.Exterior = append(st.Exterior, p)
				s.emit(events.EventWaterEscaped, &events.ParticlePayload{X: p.X, Y: p.Y})
				continue
			}
			// Soft bounce, no position correction
			p.VX *= constants.SoluteBounceDamping
			p.VY *= constants.SoluteBounceDamping
		}

		if p.IsWater() {
			water++
		} else {
			solute++
		}
		kept = append(kept, p)
	}
	st.Interior = kept
	st.WaterInside = water
	st.SoluteInside = solute
}

// updateExterior moves exterior particles, bounces them off the walls and absorbs water near the membrane
func (s *Simulation) updateExterior() {
	st := &s.State
	alive := !st.Cell.Apoptotic
	reach := st.Cell.Radius + constants.AbsorptionRange

	kept := st.Exterior[:0]
	for _, p := range st.Exterior {
		p.X += p.VX
		p.Y += p.VY

		if p.X <= 0 || p.X >= constants.WorldWidth {
			p.VX = -p.VX
		}
		if p.Y <= 0 || p.Y >= constants.WorldHeight {
			p.VY = -p.VY
		}

		if alive && p.IsWater() && p.DistanceFromCenter() < reach && s.rng.Float64() < constants.AbsorptionProbability {
			st.Interior = append(st.Interior, p)
			s.emit(events.EventWaterAbsorbed, &events.ParticlePayload{X: p.X, Y: p.Y})
			continue
		}
		kept = append(kept, p)
	}
	st.Exterior = kept
}

// applyOsmosis resizes and heals or damages the cell from the osmotic balance
func (s *Simulation) applyOsmosis() {
	cell := &s.State.Cell
	balance := float64(s.State.OsmoticBalance())

	cell.Radius = clamp(cell.Radius+constants.RadiusPerBalance*balance, constants.CellMinRadius, constants.CellMaxRadius)
	cell.Health = clamp(cell.Health+constants.HealthPerBalance*balance, constants.CellMinHealth, constants.CellMaxHealth)

	if cell.Health <= constants.CellMinHealth {
		cell.Apoptotic = true
		s.emit(events.EventApoptosis, &events.CellPayload{Radius: cell.Radius, Health: cell.Health})
	}
}

func (s *Simulation) shedFragment() {
	f := Fragment{
		X:      float64(constants.CellCenterX + randInt(s.rng, -constants.FragmentSpread, constants.FragmentSpread)),
		Y:      float64(constants.CellCenterY + randInt(s.rng, -constants.FragmentSpread, constants.FragmentSpread)),
		Radius: float64(randInt(s.rng, constants.FragmentMinRadius, constants.FragmentMaxRadius)),
	}
	s.State.Fragments = append(s.State.Fragments, f)
	s.emit(events.EventFragmentShed, &events.FragmentPayload{X: f.X, Y: f.Y, Radius: f.Radius})
}
