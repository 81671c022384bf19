package engine

import (
	"strings"

	"github.com/lixenwraith/space-snake/constants"
)

// Difficulty is the key selected on the difficulty screen
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the selectable keys in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

var gravityConstants = map[Difficulty]float64{
	DifficultyEasy:   constants.GravityEasy,
	DifficultyNormal: constants.GravityNormal,
	DifficultyHard:   constants.GravityHard,
}

// GravityConstant maps a difficulty to its field scale
// Unknown keys fall back to constants.GravityFallback
func GravityConstant(d Difficulty) float64 {
	if g, ok := gravityConstants[d]; ok {
		return g
	}
	return constants.GravityFallback
}

// Label is the capitalized button text
func (d Difficulty) Label() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}
