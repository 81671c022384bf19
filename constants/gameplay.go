package constants

// Round Setup
const (
	// InitialStarCount is the star population at round start
	InitialStarCount = 5

	// InitialObstacleCount is the obstacle population at round start
	InitialObstacleCount = 1

	// InitialDebrisCount is the debris population at round start
	InitialDebrisCount = 1
)

// Score Milestones
const (
	// BonusStarMilestone arms the bonus star wave on multiples of this score
	BonusStarMilestone = 30

	// BonusStarCount is the number of stars added by one bonus wave
	BonusStarCount = 3

	// ObstacleMilestone adds one obstacle on multiples of this score
	ObstacleMilestone = 25

	// DebrisMilestone adds one debris on multiples of this score
	DebrisMilestone = 20

	// DebrisPenalty is the score lost per debris hit
	DebrisPenalty = 1
)

// Obstacle Rotation
const (
	// ObstacleSpinMin and ObstacleSpinMax bound per-instance rotation speed, degrees per tick
	ObstacleSpinMin = -0.1
	ObstacleSpinMax = 0.1
)

// Actor Input Velocities, world units per tick
const (
	ActorSpeedX = 4
	ActorSpeedY = 2
)

// Gravity Constants per difficulty
const (
	GravityEasy     = 0.000000000000001
	GravityNormal   = 0.0000000001
	GravityHard     = 0.000001
	GravityFallback = 0.00000000000001
)
