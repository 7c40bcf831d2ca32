package game

import "testing"

func TestNewFrogStartsAtRespawnPoint(t *testing.T) {
	f := NewFrog(20, 10, 3)

	if f.X != 10 || f.Y != 9 {
		t.Errorf("frog starts at (%d, %d), expected (10, 9)", f.X, f.Y)
	}
	if f.Lives != 3 {
		t.Errorf("frog starts with %d lives, expected 3", f.Lives)
	}
}

func TestFrogMovesAreClampedAtEdges(t *testing.T) {
	tests := []struct {
		name         string
		startX       int
		startY       int
		move         func(*Frog)
		wantX, wantY int
	}{
		{"up inside grid", 10, 9, (*Frog).MoveUp, 10, 8},
		{"down inside grid", 10, 5, (*Frog).MoveDown, 10, 6},
		{"left inside grid", 10, 9, (*Frog).MoveLeft, 9, 9},
		{"right inside grid", 10, 9, (*Frog).MoveRight, 11, 9},
		{"up at top row is a no-op", 10, 0, (*Frog).MoveUp, 10, 0},
		{"down at bottom row is a no-op", 10, 9, (*Frog).MoveDown, 10, 9},
		{"left at west edge is a no-op", 0, 5, (*Frog).MoveLeft, 0, 5},
		{"right at east edge is a no-op", 19, 5, (*Frog).MoveRight, 19, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFrog(20, 10, 3)
			f.X, f.Y = tc.startX, tc.startY

			tc.move(f)

			if f.X != tc.wantX || f.Y != tc.wantY {
				t.Errorf("frog at (%d, %d), expected (%d, %d)", f.X, f.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestFrogStaysInBoundsUnderRandomWalk(t *testing.T) {
	f := NewFrog(20, 10, 3)
	moves := []func(*Frog){(*Frog).MoveUp, (*Frog).MoveDown, (*Frog).MoveLeft, (*Frog).MoveRight}

	for i := 0; i < 1000; i++ {
		moves[i*7%len(moves)](f)

		if f.X < 0 || f.X >= 20 || f.Y < 0 || f.Y >= 10 {
			t.Fatalf("frog escaped the grid at (%d, %d) after %d moves", f.X, f.Y, i+1)
		}
	}
}

func TestFrogRespawnKeepsLives(t *testing.T) {
	f := NewFrog(20, 10, 3)
	f.X, f.Y = 3, 2
	f.Lives = 1

	f.Respawn()

	if f.X != 10 || f.Y != 9 {
		t.Errorf("respawn placed frog at (%d, %d), expected (10, 9)", f.X, f.Y)
	}
	if f.Lives != 1 {
		t.Errorf("respawn changed lives to %d, expected 1", f.Lives)
	}
}
