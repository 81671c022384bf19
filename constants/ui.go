package constants

import "time"

// Button Layout in world units, relative to the playfield centre
const (
	ButtonWidth       = 160
	ButtonHeight      = 40
	GameOverBtnWidth  = 150
	ButtonOffsetX     = -80
	MenuStartOffsetY  = 20
	MenuExitOffsetY   = 80
	EasyOffsetY       = -150
	NormalOffsetY     = -100
	HardOffsetY       = -50
	RetryOffsetY      = 50
	MainMenuOffsetY   = 100
	GameOverExitOffsY = 150
)

// Background
const (
	// BackgroundTileWidth is the width of one repeating starfield tile in world units
	BackgroundTileWidth = 500

	// BackgroundStarsPerTile is the number of fixed background specks per tile
	BackgroundStarsPerTile = 18
)

// Input
const (
	// KeyHoldTimeout releases a movement axis when no key repeat arrives in time
	// Terminals report presses only; autorepeat keeps a held key alive
	KeyHoldTimeout = 500 * time.Millisecond
)
