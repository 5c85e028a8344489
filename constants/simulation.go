package constants

// World Geometry
const (
	// WorldWidth and WorldHeight are the canvas size in world units
	WorldWidth  = 800
	WorldHeight = 600

	// CellCenterX and CellCenterY are the fixed cell centre
	CellCenterX = WorldWidth / 2
	CellCenterY = WorldHeight / 2
)

// Cell Bounds
const (
	CellInitialRadius = 100.0
	CellMinRadius     = 50.0
	CellMaxRadius     = 150.0

	CellInitialHealth = 200.0
	CellMinHealth     = 0.0
	CellMaxHealth     = 200.0
)

// Particle Population
const (
	// InteriorParticleCount is the number of particles spawned inside the cell on reset
	InteriorParticleCount = 50

	// ExteriorParticleCount is the number of water particles spawned outside the cell on reset
	ExteriorParticleCount = 30

	// WaterProbability is the chance an interior particle spawns as water
	WaterProbability = 0.7

	WaterRadius  = 5.0
	SoluteRadius = 8.0

	// InteriorSpawnMargin keeps interior spawns away from the membrane
	InteriorSpawnMargin = 20

	// ExteriorSpawnMargin keeps exterior spawns away from the walls
	ExteriorSpawnMargin = 50

	// ExteriorSpawnClearance is the minimum gap between an exterior spawn and the membrane
	ExteriorSpawnClearance = 20

	// MaxPlacementAttempts caps rejection sampling per exterior particle
	MaxPlacementAttempts = 10000
)

// Membrane Transport
const (
	// SoluteBounceDamping scales solute velocity when it hits the membrane
	SoluteBounceDamping = -0.5

	// AbsorptionRange is how far outside the membrane water may still be taken in
	AbsorptionRange = 20.0

	// AbsorptionProbability is the per-tick chance an in-range water particle enters
	AbsorptionProbability = 0.02

	// SoluteOsmoticWeight is the weight of one solute particle in the balance
	SoluteOsmoticWeight = 2
)

// Osmotic Response
const (
	RadiusPerBalance = 0.01
	HealthPerBalance = 0.02

	// StatusRatio is the count ratio at which the cell is reported swelling or shrinking
	StatusRatio = 1.5
)

// Apoptosis Animation
const (
	// ApoptosisMinRadius is where shrinking and fragment shedding stop
	ApoptosisMinRadius = 10.0

	// ApoptosisShrinkPerTick is the radius lost per tick while dying
	ApoptosisShrinkPerTick = 0.5

	// FragmentProbability is the per-tick chance a fragment is shed while shrinking
	FragmentProbability = 0.1

	// FragmentSpread is the max offset of a fragment from the cell centre on each axis
	FragmentSpread = 50

	FragmentMinRadius = 5
	FragmentMaxRadius = 15
)
