package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-snake/components"
	"github.com/lixenwraith/space-snake/engine"
)

// Status carries display-only information from outside the game state
type Status struct {
	Track string
	Muted bool
	Best  int
	// HasBest is false when no round was ever recorded or the store is disabled
	HasBest bool
}

// obstacleGlyphs cycles through as an obstacle turns, one glyph per 45 degrees
var obstacleGlyphs = [...]rune{'|', '/', '-', '\\'}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	vp     *Viewport
	bg     *Starfield
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, worldW, worldH int, seed uint64) *TerminalRenderer {
	cols, rows := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		vp:     NewViewport(cols, rows, worldW, worldH),
		bg:     NewStarfield(worldH, seed),
	}
}

// Viewport exposes the world-to-cell mapping shared with mouse input
func (r *TerminalRenderer) Viewport() *Viewport { return r.vp }

// Resize re-reads the screen size
func (r *TerminalRenderer) Resize() {
	cols, rows := r.screen.Size()
	r.vp.Resize(cols, rows)
	r.screen.Sync()
}

// RenderFrame renders the entire game frame and advances the background scroll
func (r *TerminalRenderer) RenderFrame(g *engine.Game, st Status) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.fill(base)
	r.drawBackground(base)

	switch g.State() {
	case engine.StateMenu:
		r.drawTitle(base, "S P A C E   S N A K E", -220)
		if st.HasBest {
			r.drawCentered(base.Foreground(RgbStatusDim), fmt.Sprintf("Best: %d", st.Best), -120)
		}
		r.drawButtons(g)
	case engine.StateDifficultySelection:
		r.drawTitle(base, "SELECT DIFFICULTY", -220)
		r.drawButtons(g)
	case engine.StatePlaying:
		r.drawRound(g.Round, base)
		r.drawHUD(g.Round, base)
	case engine.StateGameOver:
		r.drawTitle(base, "G A M E   O V E R", -100)
		r.drawCentered(base.Foreground(RgbText), fmt.Sprintf("Score: %d", g.Round.Score), 0)
		r.drawButtons(g)
	}

	r.drawStatus(st, base)
	r.bg.Advance()
	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for row := 0; row < r.vp.Rows; row++ {
		for col := 0; col < r.vp.Cols; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBackground(base tcell.Style) {
	dim := base.Foreground(RgbSpeckDim)
	lit := base.Foreground(RgbSpeckLit)
	r.bg.Each(r.vp.WorldW, func(x, y int, bright bool) {
		col, row := r.vp.WorldToCell(x, y)
		if bright {
			r.screen.SetContent(col, row, '+', nil, lit)
		} else {
			r.screen.SetContent(col, row, '.', nil, dim)
		}
	})
}

// drawRound draws stars, debris, obstacles, then the actor on top
func (r *TerminalRenderer) drawRound(round *engine.RoundState, base tcell.Style) {
	if !round.Active() {
		return
	}

	starStyle := base.Foreground(RgbStar)
	round.Stars.Each(func(_ int, s *components.Star) {
		r.drawBody(s.Body, '*', starStyle)
	})

	debrisStyle := base.Foreground(RgbDebris)
	round.Debris.Each(func(_ int, d *components.Debris) {
		r.drawBody(d.Body, '#', debrisStyle)
	})

	obstacleStyle := base.Foreground(RgbObstacle).Bold(true)
	round.Obstacles.Each(func(_ int, o *components.Obstacle) {
		r.drawBody(o.Body, ObstacleGlyph(o.Angle), obstacleStyle)
	})

	a := round.Actor
	r.drawBody(a.Body, 'o', base.Foreground(RgbActorDim))
	cx, cy := a.Center()
	col, row := r.vp.WorldToCell(int(cx), int(cy))
	r.setCell(col, row, '@', base.Foreground(RgbActor).Bold(true))
}

// ObstacleGlyph picks the glyph for a rotation angle in degrees
func ObstacleGlyph(angle float64) rune {
	step := int(math.Floor(angle/45)) % len(obstacleGlyphs)
	if step < 0 {
		step += len(obstacleGlyphs)
	}
	return obstacleGlyphs[step]
}

// drawBody fills the cells covered by a body, clipped to the screen
func (r *TerminalRenderer) drawBody(b components.Body, ch rune, style tcell.Style) {
	c0, r0, c1, r1 := r.vp.RectToCells(b.X, b.Y, b.Size, b.Size)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			r.setCell(col, row, ch, style)
		}
	}
}

func (r *TerminalRenderer) drawHUD(round *engine.RoundState, base tcell.Style) {
	style := base.Foreground(RgbText)
	r.drawText(1, 0, fmt.Sprintf("Score: %d", round.Score), style)
	r.drawText(1, 1, fmt.Sprintf("Time: %d", round.RealTime), style)
}

func (r *TerminalRenderer) drawStatus(st Status, base tcell.Style) {
	text := st.Track
	if st.Muted {
		text = "[muted]"
	}
	if text == "" {
		return
	}
	r.drawText(r.vp.Cols-len([]rune(text))-1, r.vp.Rows-1, text, base.Foreground(RgbStatusDim))
}

func (r *TerminalRenderer) drawButtons(g *engine.Game) {
	face := tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbButtonText)
	for _, b := range engine.ButtonsFor(g.State(), g.Width, g.Height) {
		c0, r0, c1, r1 := r.vp.RectToCells(b.X, b.Y, b.W, b.H)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				r.setCell(col, row, ' ', face)
			}
		}
		label := []rune(b.Label)
		col := c0 + (c1-c0-len(label))/2
		r.drawText(max(col, c0), r0+(r1-r0-1)/2, b.Label, face)
	}
}

// drawTitle draws text centred horizontally, offY world units from the playfield centre
func (r *TerminalRenderer) drawTitle(base tcell.Style, text string, offY int) {
	r.drawCentered(base.Foreground(RgbTitle).Bold(true), text, offY)
}

func (r *TerminalRenderer) drawCentered(style tcell.Style, text string, offY int) {
	_, row := r.vp.WorldToCell(0, r.vp.WorldH/2+offY)
	col := (r.vp.Cols - len([]rune(text))) / 2
	r.drawText(max(col, 0), row, text, style)
}

func (r *TerminalRenderer) drawText(col, row int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.setCell(col+i, row, ch, style)
	}
}

func (r *TerminalRenderer) setCell(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= r.vp.Cols || row >= r.vp.Rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}
