package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(8, 10, 24)     // Deep space
	RgbSpeckDim   = tcell.NewRGBColor(90, 90, 120)   // Far background stars
	RgbSpeckLit   = tcell.NewRGBColor(200, 200, 230) // Near background stars

	RgbActor    = tcell.NewRGBColor(80, 255, 120)  // Snake green
	RgbActorDim = tcell.NewRGBColor(30, 150, 70)   // Snake body
	RgbStar     = tcell.NewRGBColor(255, 220, 60)  // Collectible gold
	RgbObstacle = tcell.NewRGBColor(255, 90, 70)   // Rotating hazard red
	RgbDebris   = tcell.NewRGBColor(150, 140, 130) // Static hazard gray

	RgbText       = tcell.NewRGBColor(255, 255, 255) // HUD and labels
	RgbTitle      = tcell.NewRGBColor(120, 200, 255) // Title and game over
	RgbButtonBg   = tcell.NewRGBColor(255, 255, 255) // Button face
	RgbButtonText = tcell.NewRGBColor(0, 0, 0)       // Button label
	RgbStatusDim  = tcell.NewRGBColor(130, 130, 150) // Track and mute status
)
