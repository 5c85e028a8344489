package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit         // Esc, Ctrl+C, q, window close
	IntentPointerPress // Primary button went down
	IntentResize       // Terminal resize event
)

// Intent is a parsed frontend event
type Intent struct {
	Type IntentType

	// World coordinates, set for IntentPointerPress
	X, Y float64
}
