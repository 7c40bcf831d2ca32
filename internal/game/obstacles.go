package game

import (
	"math/rand"

	"github.com/dsemenov/frogger/internal/config"
	"github.com/dsemenov/frogger/internal/core"
)

// Obstacle is a horizontally sweeping hazard. Its shape (width, height) and
// speed are fixed at generation; only X changes, wrapping around the grid.
type Obstacle struct {
	X, Y   int
	Width  int
	Height int
	Speed  int // Cells per tick; negative moves left
}

// Step advances the obstacle by its speed, wrapping around the grid width.
// The resulting X is always in [0, gridW).
func (o *Obstacle) Step(gridW int) {
	o.X = core.Mod(o.X+o.Speed, gridW)
}

// Overlaps returns true iff the point (x, y) lies within the obstacle's
// body: x in [X, X+Width) and y in [Y, Y+Height).
func (o Obstacle) Overlaps(x, y int) bool {
	return core.NewRect(o.X, o.Y, o.Width, o.Height).Contains(x, y)
}

// generateObstacles creates the fixed obstacle set for one run.
// Rows are restricted to the interior of the grid so the top goal row and
// the bottom spawn row stay clear. The set never changes after this.
func generateObstacles(rng *rand.Rand, grid config.GridConfig, cfg config.ObstacleConfig) []Obstacle {
	obstacles := make([]Obstacle, 0, cfg.Count)

	widthSpan := core.Max(cfg.MaxWidth-cfg.MinWidth, 0)
	speedSpan := core.Max(cfg.MaxSpeed-cfg.MinSpeed, 0)

	for i := 0; i < cfg.Count; i++ {
		obstacles = append(obstacles, Obstacle{
			X:      rng.Intn(grid.Width),
			Y:      1 + rng.Intn(core.Max(grid.Height-2, 1)),
			Width:  cfg.MinWidth + rng.Intn(widthSpan+1),
			Height: 1,
			Speed:  cfg.MinSpeed + rng.Intn(speedSpan+1),
		})
	}

	return obstacles
}
