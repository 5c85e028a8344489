package constants

// Window
const (
	WindowTitle = "Cell: Osmosis + Apoptosis"
)

// Retry Control (world units)
const (
	RetryButtonWidth  = 100
	RetryButtonHeight = 40
	RetryButtonX      = WorldWidth/2 - RetryButtonWidth/2
	RetryButtonY      = WorldHeight - 50

	// RetryLabelOffsetX and RetryLabelOffsetY place the label inside the button
	RetryLabelOffsetX = 30
	RetryLabelOffsetY = 10

	RetryLabel = "retry"
)

// Stats Panel (world units)
const (
	StatsX          = 10
	StatsY          = 10
	StatsLineHeight = 20

	MembraneStrokeWidth = 4
	ButtonStrokeWidth   = 2
)

// Status Labels
const (
	StatusNormal    = "normal"
	StatusSwelling  = "swelling (water entering)"
	StatusShrinking = "shrinking (water exiting)"
	StatusDead      = "cell death triggered!"
)
