package game

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var countColors = map[int]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorWhite,
	8: tcell.ColorGray,
}

type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
}

func NewRenderer() *Renderer {
	return &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView().SetTextAlign(tview.AlignCenter),
	}
}

func (r *Renderer) DrawBoard(view View) {
	r.boardTable.Clear()
	for row := 0; row < view.Rows; row++ {
		for col := 0; col < view.Cols; col++ {
			r.RenderCell(view.Cells[row][col], row, col)
		}
	}

	r.boardTable.SetSelectable(true, true)
	r.DrawStatus(view)
}

func (r *Renderer) RenderCell(cell CellView, row, col int) {
	text, color := cellText(cell)
	r.boardTable.SetCell(row, col, tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(color))
}

func (r *Renderer) DrawStatus(view View) {
	r.status.SetText(statusLine(view))
}

func cellText(cell CellView) (string, tcell.Color) {
	switch {
	case cell.Exploded:
		return "X", tcell.ColorRed
	case cell.WrongFlag:
		return "x", tcell.ColorOrange
	case cell.Flagged:
		return "F", tcell.ColorYellow
	case cell.Mine:
		return "*", tcell.ColorWhite
	case !cell.Revealed:
		return ".", tcell.ColorGray
	case cell.Count == 0:
		return " ", tcell.ColorDefault
	}
	return strconv.Itoa(cell.Count), countColors[cell.Count]
}

func face(outcome Outcome) string {
	switch outcome {
	case Win:
		return "😎"
	case Loss:
		return "😵"
	default:
		return "😊"
	}
}

func formatTimer(elapsed int64) string {
	return fmt.Sprintf("%03d", elapsed)
}

func statusLine(view View) string {
	return fmt.Sprintf("%s  mines %03d  time %s  %s",
		face(view.Outcome), view.RemainingMines, formatTimer(view.Elapsed), view.Difficulty)
}

// endMessage returns the text of the end-of-round dialog.
func endMessage(view View) string {
	if view.Outcome == Win {
		return fmt.Sprintf("🎉 You Won!\nTime: %d seconds", view.Elapsed)
	}
	return "💥 Game Over!\nYou hit a mine!"
}
