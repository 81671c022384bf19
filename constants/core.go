package constants

// Playfield dimensions in world units
const (
	PlayfieldWidth  = 1500
	PlayfieldHeight = 600
)

// Entity sizes in world units (square bounding boxes)
const (
	ActorSize    = 80
	StarSize     = 40
	DebrisSize   = 70
	ObstacleSize = 100
)

// Drift speed of every scrolling entity, world units per tick
const ScrollSpeed = 5
