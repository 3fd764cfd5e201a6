package models

type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	NeighborMines int
	Row           int
	Col           int
}

// Coord is a (row, col) position on the board.
type Coord struct {
	Row int
	Col int
}
