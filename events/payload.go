package events

// PointerPayload carries a pointer press in world coordinates
type PointerPayload struct {
	X, Y float64
}

// ParticlePayload carries the position of a particle crossing the membrane
type ParticlePayload struct {
	X, Y float64
}

// CellPayload snapshots the cell when a state transition fires
type CellPayload struct {
	Radius float64
	Health float64
}

// FragmentPayload describes a freshly shed fragment
type FragmentPayload struct {
	X, Y   float64
	Radius float64
}
