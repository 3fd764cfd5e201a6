package models

import (
	"math/rand"
)

type Board struct {
	Cells [][]Cell
	Rows  int
	Cols  int
}

// NewBoard builds an empty rows x cols board. Every cell is hidden, unflagged
// and mine free; only its coordinates are set.
func NewBoard(rows int, cols int) *Board {
	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, cols)
		for col := range cells[row] {
			cells[row][col] = Cell{Row: row, Col: col}
		}
	}

	return &Board{
		Cells: cells,
		Rows:  rows,
		Cols:  cols,
	}
}

// InBounds reports whether (row, col) addresses a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Neighbors returns the in-bounds coordinates around (row, col) in row-major
// order, the center excluded.
func Neighbors(row, col, rows, cols int) []Coord {
	neighbors := make([]Coord, 0, 8)
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			newRow, newCol := row+deltaRow, col+deltaCol
			if newRow >= 0 && newRow < rows && newCol >= 0 && newCol < cols {
				neighbors = append(neighbors, Coord{Row: newRow, Col: newCol})
			}
		}
	}
	return neighbors
}

// PlaceMines samples uniformly random cells until mineCount of them are mined.
// The cell at (avoidRow, avoidCol) and cells that already hold a mine are
// rejected and resampled.
func (b *Board) PlaceMines(r *rand.Rand, mineCount, avoidRow, avoidCol int) {
	// At least one cell must stay free for the avoided coordinate.
	if limit := b.Rows*b.Cols - 1; mineCount > limit {
		mineCount = limit
	}

	placed := 0
	for placed < mineCount {
		row := r.Intn(b.Rows)
		col := r.Intn(b.Cols)

		if (row == avoidRow && col == avoidCol) || b.Cells[row][col].IsMine {
			continue
		}

		b.Cells[row][col].IsMine = true
		placed++
	}
}

// ComputeNeighborCounts sets NeighborMines on every non-mine cell. It has to
// run after PlaceMines and before the first cell is revealed.
func (b *Board) ComputeNeighborCounts() {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.Cells[row][col].IsMine {
				continue
			}
			b.Cells[row][col].NeighborMines = b.countNeighborMines(row, col)
		}
	}
}

func (b *Board) countNeighborMines(row, col int) int {
	nearbyMines := 0
	for _, n := range Neighbors(row, col, b.Rows, b.Cols) {
		if b.Cells[n.Row][n.Col].IsMine {
			nearbyMines++
		}
	}
	return nearbyMines
}

// RevealCell reveals the cell at (row, col) and, when it has no neighboring
// mines, every neighbor transitively. Revealed and flagged cells stop the fill.
// It returns how many cells were newly revealed.
func (b *Board) RevealCell(row, col int) int {
	if !b.InBounds(row, col) {
		return 0
	}

	cell := &b.Cells[row][col]
	if cell.IsRevealed || cell.IsFlagged {
		return 0
	}

	cell.IsRevealed = true
	revealed := 1

	if cell.NeighborMines > 0 {
		return revealed
	}

	for _, n := range Neighbors(row, col, b.Rows, b.Cols) {
		revealed += b.RevealCell(n.Row, n.Col)
	}
	return revealed
}

// ToggleFlag flips the flag of a hidden cell and returns the change in the
// number of placed flags: +1, -1, or 0 when the cell cannot be flagged.
func (b *Board) ToggleFlag(row, col int) int {
	if !b.InBounds(row, col) {
		return 0
	}

	cell := &b.Cells[row][col]
	if cell.IsRevealed {
		return 0
	}

	cell.IsFlagged = !cell.IsFlagged
	if cell.IsFlagged {
		return 1
	}
	return -1
}

// CheckWin reports whether every safe cell has been revealed. Flags are not
// taken into account.
func (b *Board) CheckWin(mineCount int) bool {
	revealedSafe := 0
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			cell := b.Cells[row][col]
			if cell.IsRevealed && !cell.IsMine {
				revealedSafe++
			}
		}
	}

	return revealedSafe == b.Rows*b.Cols-mineCount
}

// Mines lists the coordinates of every mined cell in row-major order.
func (b *Board) Mines() []Coord {
	var mines []Coord
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.Cells[row][col].IsMine {
				mines = append(mines, Coord{Row: row, Col: col})
			}
		}
	}
	return mines
}
