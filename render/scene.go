package render

import (
	"fmt"

	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/engine"
)

// DrawScene renders one frame of the simulation state onto s
// Order: background, membrane, interior, exterior, fragments, stats, retry control
func DrawScene(s Surface, st *engine.State) {
	s.Clear(ColorBackground)

	border := ColorMembrane
	if st.Cell.Apoptotic {
		border = ColorMembraneDead
	}
	s.StrokeCircle(constants.CellCenterX, constants.CellCenterY, st.Cell.Radius, constants.MembraneStrokeWidth, border)

	for _, p := range st.Interior {
		c := ColorWater
		if !p.IsWater() {
			c = ColorSolute
		}
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}
	for _, p := range st.Exterior {
		s.FillCircle(p.X, p.Y, p.Radius, ColorWater)
	}
	for _, f := range st.Fragments {
		s.FillCircle(f.X, f.Y, f.Radius, ColorSolute)
	}

	drawStats(s, st)

	if st.Cell.Apoptotic {
		drawRetryButton(s)
	}
}

func drawStats(s Surface, st *engine.State) {
	lines := []string{
		fmt.Sprintf("water: %d", st.WaterInside),
		fmt.Sprintf("solute: %d", st.SoluteInside),
		fmt.Sprintf("health: %d", int(st.Cell.Health)),
	}
	y := float64(constants.StatsY)
	for _, line := range lines {
		s.Text(constants.StatsX, y, line, ColorText)
		y += constants.StatsLineHeight
	}

	if st.Cell.Apoptotic {
		s.Text(constants.StatsX, y, st.Status(), ColorSolute)
		return
	}
	s.Text(constants.StatsX, y, "status: "+st.Status(), ColorText)
}

func drawRetryButton(s Surface) {
	btn := engine.RetryButton
	s.FillRect(btn, ColorButton)
	s.StrokeRect(btn, constants.ButtonStrokeWidth, ColorText)
	s.Text(btn.X+constants.RetryLabelOffsetX, btn.Y+constants.RetryLabelOffsetY, constants.RetryLabel, ColorText)
}
