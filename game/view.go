package game

// CellView is the post-state of one cell as the player may see it. Mine is
// only set for revealed mines or once the round has concluded.
type CellView struct {
	Revealed  bool
	Flagged   bool
	Mine      bool
	Exploded  bool
	WrongFlag bool
	Count     int
}

// View is a snapshot of a round for the presentation layer.
type View struct {
	Cells          [][]CellView
	Rows           int
	Cols           int
	Difficulty     string
	RemainingMines int
	Outcome        Outcome
	Elapsed        int64
}

// Snapshot builds the view of the round. After a loss every mine is exposed
// and wrong flags are marked; after a win every mine shows as flagged.
func (r *Round) Snapshot() View {
	b := r.Board
	hit, hasHit := r.Hit()

	v := View{
		Cells:          make([][]CellView, b.Rows),
		Rows:           b.Rows,
		Cols:           b.Cols,
		Difficulty:     r.Preset.Name,
		RemainingMines: r.RemainingMines(),
		Outcome:        r.result,
		Elapsed:        r.Elapsed(),
	}

	for row := 0; row < b.Rows; row++ {
		v.Cells[row] = make([]CellView, b.Cols)
		for col := 0; col < b.Cols; col++ {
			cell := b.Cells[row][col]
			cv := CellView{
				Revealed: cell.IsRevealed,
				Flagged:  cell.IsFlagged,
			}
			if cell.IsRevealed && !cell.IsMine {
				cv.Count = cell.NeighborMines
			}

			switch r.result {
			case Loss:
				cv.Mine = cell.IsMine
				cv.WrongFlag = cell.IsFlagged && !cell.IsMine
				cv.Exploded = hasHit && hit.Row == row && hit.Col == col
			case Win:
				if cell.IsMine {
					cv.Flagged = true
				}
			default:
				cv.Mine = cell.IsRevealed && cell.IsMine
			}

			v.Cells[row][col] = cv
		}
	}

	return v
}
