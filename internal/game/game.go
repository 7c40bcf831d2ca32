// Package game implements the Frogger game logic: a frog hopping on a
// fixed-size grid while obstacles sweep across the interior rows.
// It contains pure logic with no terminal dependencies; the platform layer
// handles input mapping, timing, and display.
package game

import (
	"fmt"
	"math/rand"

	"github.com/dsemenov/frogger/internal/config"
	"github.com/dsemenov/frogger/internal/core"
)

// Game owns one frog and a fixed set of obstacles and advances them one
// tick at a time. It has two states: running and terminated, the latter
// reachable only through ActionQuit.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	frog      *Frog
	obstacles []Obstacle

	terminated bool

	frogGlyph     rune
	obstacleGlyph rune
}

// New creates a new game with the given configuration.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes the game: a fresh frog at the respawn point and a
// freshly generated obstacle set. The obstacle set is fixed afterwards;
// nothing is added or removed during a run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.frog = NewFrog(g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Player.Lives)
	g.obstacles = generateObstacles(g.rng, g.cfg.Grid, g.cfg.Obstacles)

	g.terminated = false

	g.frogGlyph = glyphOf(g.cfg.Player.Glyph, '0')
	g.obstacleGlyph = glyphOf(g.cfg.Obstacles.Glyph, '#')
}

// Step advances the simulation by one fixed tick: apply at most one
// directional move, advance every obstacle, then resolve collisions.
// ActionQuit terminates immediately; the obstacles do not advance on the
// quit tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.terminated {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.terminated = true
		return core.StepResult{State: g.State()}
	}

	g.applyMove(in)

	for i := range g.obstacles {
		g.obstacles[i].Step(g.cfg.Grid.Width)
	}

	g.resolveCollision()

	return core.StepResult{State: g.State()}
}

// applyMove applies a single directional move from the frame.
// One input event is consumed per tick; if several directions were queued
// in the same frame, a fixed priority order picks the winner.
func (g *Game) applyMove(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.frog.MoveUp()
	case in.Has(core.ActionDown):
		g.frog.MoveDown()
	case in.Has(core.ActionLeft):
		g.frog.MoveLeft()
	case in.Has(core.ActionRight):
		g.frog.MoveRight()
	}
}

// resolveCollision tests the frog against every obstacle. The first
// overlap costs one life and sends the frog back to the respawn point;
// at most one life is lost per tick no matter how many obstacles overlap
// simultaneously.
//
// Lives are allowed to go below zero: there is no game-over state, and
// the run continues until the player quits.
func (g *Game) resolveCollision() {
	for _, o := range g.obstacles {
		if o.Overlaps(g.frog.X, g.frog.Y) {
			g.frog.Lives--
			g.frog.Respawn()
			return
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	lives := 0
	if g.frog != nil {
		lives = g.frog.Lives
	}
	return core.GameState{
		Lives:      lives,
		Terminated: g.terminated,
	}
}

// Render draws the playfield centered on the screen with a box border and
// a lives readout. The screen buffer is cleared first, so stale glyphs
// from the previous frame never survive a move.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	gridW, gridH := g.cfg.Grid.Width, g.cfg.Grid.Height

	// Box border needs one extra cell on each side, plus a HUD line above.
	if dst.Width() < gridW+2 || dst.Height() < gridH+3 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	fieldX := (dst.Width() - gridW) / 2
	fieldY := (dst.Height() - gridH) / 2

	dst.DrawBox(core.NewRect(fieldX-1, fieldY-1, gridW+2, gridH+2))
	dst.DrawText(fieldX-1, fieldY-2, fmt.Sprintf("Lives: %d", g.frog.Lives))

	for _, o := range g.obstacles {
		for dx := 0; dx < o.Width; dx++ {
			// Bodies wider than one cell wrap around the field edge,
			// same as their movement.
			x := core.Mod(o.X+dx, gridW)
			dst.SetColored(fieldX+x, fieldY+o.Y, g.obstacleGlyph, core.ColorBrightRed)
		}
	}

	dst.SetColored(fieldX+g.frog.X, fieldY+g.frog.Y, g.frogGlyph, core.ColorBrightGreen)
}

// glyphOf returns the first rune of s, or fallback if s is empty.
func glyphOf(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
