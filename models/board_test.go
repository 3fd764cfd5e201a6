package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromLayout builds a board from rows of '*' (mine) and '.' (safe) and
// computes the neighbor counts.
func boardFromLayout(t *testing.T, layout ...string) *Board {
	t.Helper()
	require.NotEmpty(t, layout)

	b := NewBoard(len(layout), len(layout[0]))
	for row, line := range layout {
		require.Len(t, line, b.Cols, "row %d", row)
		for col, ch := range line {
			b.Cells[row][col].IsMine = ch == '*'
		}
	}
	b.ComputeNeighborCounts()
	return b
}

func countMines(b *Board) int {
	return len(b.Mines())
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(3, 4)
	require.Equal(t, 3, b.Rows)
	require.Equal(t, 4, b.Cols)
	require.Len(t, b.Cells, 3)

	for row := range b.Cells {
		require.Len(t, b.Cells[row], 4)
		for col, cell := range b.Cells[row] {
			assert.Equal(t, Cell{Row: row, Col: col}, cell)
		}
	}

	assert.Equal(t, b, NewBoard(3, 4), "same dimensions must give the same board")
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     []Coord
	}{
		{
			name: "corner",
			row:  0, col: 0,
			want: []Coord{{0, 1}, {1, 0}, {1, 1}},
		},
		{
			name: "edge",
			row:  0, col: 1,
			want: []Coord{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
		},
		{
			name: "center",
			row:  1, col: 1,
			want: []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
		},
		{
			name: "opposite corner",
			row:  2, col: 2,
			want: []Coord{{1, 1}, {1, 2}, {2, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Neighbors(tt.row, tt.col, 3, 3))
		})
	}

	assert.Empty(t, Neighbors(0, 0, 1, 1))
}

func TestPlaceMinesExactCountAndAvoidsFirstClick(t *testing.T) {
	for _, p := range Presets {
		for seed := int64(1); seed <= 20; seed++ {
			r := rand.New(rand.NewSource(seed))
			avoidRow, avoidCol := r.Intn(p.Rows), r.Intn(p.Cols)

			b := NewBoard(p.Rows, p.Cols)
			b.PlaceMines(r, p.Mines, avoidRow, avoidCol)

			require.Equal(t, p.Mines, countMines(b), "%s seed %d", p.Name, seed)
			require.False(t, b.Cells[avoidRow][avoidCol].IsMine, "%s seed %d", p.Name, seed)
		}
	}
}

func TestPlaceMinesFirstClickScenario(t *testing.T) {
	b := NewBoard(9, 9)
	b.PlaceMines(rand.New(rand.NewSource(42)), 10, 4, 4)

	assert.False(t, b.Cells[4][4].IsMine)
	assert.Equal(t, 10, countMines(b))
}

func TestPlaceMinesFillsAllButAvoided(t *testing.T) {
	b := NewBoard(3, 3)
	b.PlaceMines(rand.New(rand.NewSource(7)), 8, 1, 1)

	assert.Equal(t, 8, countMines(b))
	assert.False(t, b.Cells[1][1].IsMine)
}

func TestPlaceMinesClampsToFreeCell(t *testing.T) {
	b := NewBoard(2, 2)
	b.PlaceMines(rand.New(rand.NewSource(7)), 10, 0, 0)

	assert.Equal(t, 3, countMines(b))
	assert.False(t, b.Cells[0][0].IsMine)
}

func TestComputeNeighborCountsSmallBoard(t *testing.T) {
	b := boardFromLayout(t,
		"...",
		".*.",
		"...",
	)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 1 && col == 1 {
				continue
			}
			assert.Equal(t, 1, b.Cells[row][col].NeighborMines, "(%d,%d)", row, col)
		}
	}
	assert.Zero(t, b.Cells[1][1].NeighborMines, "mines keep a zero count")
}

func TestComputeNeighborCountsMatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		b := NewBoard(Medium.Rows, Medium.Cols)
		b.PlaceMines(r, Medium.Mines, 0, 0)
		b.ComputeNeighborCounts()

		for row := 0; row < b.Rows; row++ {
			for col := 0; col < b.Cols; col++ {
				if b.Cells[row][col].IsMine {
					continue
				}
				want := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						nr, nc := row+dr, col+dc
						if (dr != 0 || dc != 0) && b.InBounds(nr, nc) && b.Cells[nr][nc].IsMine {
							want++
						}
					}
				}
				require.Equal(t, want, b.Cells[row][col].NeighborMines, "seed %d (%d,%d)", seed, row, col)
			}
		}
	}
}

func TestRevealCellNumberedStops(t *testing.T) {
	b := boardFromLayout(t,
		"*..",
		"...",
		"...",
	)

	require.Equal(t, 1, b.RevealCell(0, 1))
	assert.True(t, b.Cells[0][1].IsRevealed)
	assert.False(t, b.Cells[0][2].IsRevealed)
}

func TestRevealCellFloodFill(t *testing.T) {
	b := boardFromLayout(t,
		"....*",
		".....",
		".....",
		"*....",
	)

	n := b.RevealCell(1, 1)

	// The zero region plus its numbered border covers every safe cell here.
	hidden := []Coord{}
	revealed := 0
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			cell := b.Cells[row][col]
			if cell.IsRevealed {
				revealed++
				assert.False(t, cell.IsMine)
				continue
			}
			hidden = append(hidden, Coord{row, col})
		}
	}
	assert.Equal(t, revealed, n)
	assert.ElementsMatch(t, []Coord{{0, 4}, {3, 0}}, hidden)
	assert.True(t, b.CheckWin(2))
}

func TestRevealCellIsIdempotent(t *testing.T) {
	b := boardFromLayout(t,
		"....",
		"....",
		"...*",
	)

	first := b.RevealCell(0, 0)
	require.Positive(t, first)

	snapshot := NewBoard(b.Rows, b.Cols)
	for row := range b.Cells {
		copy(snapshot.Cells[row], b.Cells[row])
	}

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.Cells[row][col].IsRevealed {
				assert.Zero(t, b.RevealCell(row, col))
			}
		}
	}
	assert.Equal(t, snapshot.Cells, b.Cells)
}

func TestRevealCellStopsAtFlags(t *testing.T) {
	b := boardFromLayout(t,
		"....",
		"....",
		"...*",
	)
	require.Equal(t, 1, b.ToggleFlag(0, 2))

	assert.Zero(t, b.RevealCell(0, 2), "flagged cells cannot be revealed")
	b.RevealCell(0, 0)
	assert.False(t, b.Cells[0][2].IsRevealed)
	assert.True(t, b.Cells[0][2].IsFlagged)
}

func TestRevealCellOutOfBounds(t *testing.T) {
	b := NewBoard(2, 2)
	assert.Zero(t, b.RevealCell(-1, 0))
	assert.Zero(t, b.RevealCell(0, 2))
}

func TestRevealCellLargeOpenRegion(t *testing.T) {
	// One mine in the far corner: a single click on the opposite corner must
	// open the whole safe region.
	b := NewBoard(Hard.Rows, Hard.Cols)
	b.Cells[Hard.Rows-1][Hard.Cols-1].IsMine = true
	b.ComputeNeighborCounts()

	n := b.RevealCell(0, 0)

	assert.Equal(t, Hard.Cells()-1, n)
	assert.True(t, b.CheckWin(1))
}

func TestToggleFlag(t *testing.T) {
	b := NewBoard(2, 2)

	assert.Equal(t, 1, b.ToggleFlag(0, 0))
	assert.True(t, b.Cells[0][0].IsFlagged)
	assert.Equal(t, -1, b.ToggleFlag(0, 0))
	assert.False(t, b.Cells[0][0].IsFlagged)

	b.Cells[1][1].IsRevealed = true
	assert.Zero(t, b.ToggleFlag(1, 1))
	assert.False(t, b.Cells[1][1].IsFlagged)

	assert.Zero(t, b.ToggleFlag(5, 5))
}

func TestCheckWin(t *testing.T) {
	b := boardFromLayout(t,
		"*.",
		"..",
	)

	assert.False(t, b.CheckWin(1))

	// Flagging every mine is not enough.
	b.ToggleFlag(0, 0)
	assert.False(t, b.CheckWin(1))

	b.RevealCell(0, 1)
	b.RevealCell(1, 0)
	assert.False(t, b.CheckWin(1), "one safe cell still hidden")

	b.RevealCell(1, 1)
	assert.True(t, b.CheckWin(1))

	b.ToggleFlag(0, 0)
	assert.True(t, b.CheckWin(1), "flags are irrelevant")
}

func TestMines(t *testing.T) {
	b := boardFromLayout(t,
		"*.",
		".*",
	)
	assert.Equal(t, []Coord{{0, 0}, {1, 1}}, b.Mines())
	assert.Empty(t, NewBoard(2, 2).Mines())
}
