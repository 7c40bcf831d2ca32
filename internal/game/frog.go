package game

// Frog is the player-controlled token. It holds a grid position and the
// remaining lives. Moves saturate at the grid edges; moving past an edge
// is a no-op, never an error.
type Frog struct {
	X, Y  int
	Lives int

	gridW, gridH int
}

// NewFrog creates a frog at the respawn point: the horizontal midpoint of
// the bottom row.
func NewFrog(gridW, gridH, lives int) *Frog {
	f := &Frog{
		Lives: lives,
		gridW: gridW,
		gridH: gridH,
	}
	f.Respawn()
	return f
}

// Respawn resets the frog to its starting position. Lives are untouched;
// only the collision resolution in the game loop changes them.
func (f *Frog) Respawn() {
	f.X = f.gridW / 2
	f.Y = f.gridH - 1
}

// MoveUp hops one cell up.
func (f *Frog) MoveUp() {
	if f.Y > 0 {
		f.Y--
	}
}

// MoveDown hops one cell down.
func (f *Frog) MoveDown() {
	if f.Y < f.gridH-1 {
		f.Y++
	}
}

// MoveLeft hops one cell left.
func (f *Frog) MoveLeft() {
	if f.X > 0 {
		f.X--
	}
}

// MoveRight hops one cell right.
func (f *Frog) MoveRight() {
	if f.X < f.gridW-1 {
		f.X++
	}
}
