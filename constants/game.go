package constants

import "time"

// Game Loop Timing Constants
const (
	// TargetFPS is the fixed logic and render rate of the frame clock
	TargetFPS = 60

	// FrameUpdateInterval is the frame clock period at TargetFPS
	FrameUpdateInterval = time.Second / TargetFPS

	// TicksPerRealSecond converts elapsed ticks into the displayed time counter
	TicksPerRealSecond = 100

	// EventQueueSize is the capacity of the input event channel
	EventQueueSize = 100
)

// System Execution Priorities (lower runs first)
const (
	PriorityGravity   = 10
	PriorityCollision = 20
	PriorityTimer     = 30
	PriorityMovement  = 40
)
