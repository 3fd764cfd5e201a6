package game

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/dimaq12/minesweeper/models"
)

type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "continue"
	}
}

// FlagResult reports what a flag toggle did to the round.
type FlagResult struct {
	Applied bool
	Delta   int
}

// Round is the state of a single play-through. Only Tick and Elapsed may be
// called from a goroutine other than the one driving reveals and flags.
type Round struct {
	ID     string
	Preset models.Preset
	Board  *models.Board

	rand   *rand.Rand
	log    logrus.FieldLogger
	flags  int
	result Outcome
	hit    *models.Coord

	started   *atomic.Bool
	concluded *atomic.Bool
	elapsed   *atomic.Int64
}

// NewRound creates an empty board for the preset. Mines are placed by the
// first HandleReveal.
func NewRound(preset models.Preset, r *rand.Rand, log logrus.FieldLogger) *Round {
	id := uuid.New().String()
	return &Round{
		ID:        id,
		Preset:    preset,
		Board:     models.NewBoard(preset.Rows, preset.Cols),
		rand:      r,
		log:       log.WithField("round", id),
		started:   atomic.NewBool(false),
		concluded: atomic.NewBool(false),
		elapsed:   atomic.NewInt64(0),
	}
}

// HandleReveal applies a primary action on (row, col). The first reveal of the
// round places the mines away from the clicked cell and starts the timer.
func (r *Round) HandleReveal(row, col int) Outcome {
	if r.concluded.Load() || !r.Board.InBounds(row, col) {
		return r.result
	}

	cell := &r.Board.Cells[row][col]
	if cell.IsRevealed || cell.IsFlagged {
		return r.result
	}

	if !r.started.Load() {
		r.Board.PlaceMines(r.rand, r.Preset.Mines, row, col)
		r.Board.ComputeNeighborCounts()
		r.started.Store(true)
		r.log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mines placed")
	}

	if cell.IsMine {
		cell.IsRevealed = true
		r.hit = &models.Coord{Row: row, Col: col}
		r.conclude(Loss)
		return r.result
	}

	revealed := r.Board.RevealCell(row, col)
	r.log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"revealed": revealed,
	}).Debug("cells revealed")

	if r.Board.CheckWin(r.Preset.Mines) {
		r.conclude(Win)
	}
	return r.result
}

// ToggleFlag applies a secondary action on (row, col).
func (r *Round) ToggleFlag(row, col int) FlagResult {
	if r.concluded.Load() {
		return FlagResult{}
	}

	delta := r.Board.ToggleFlag(row, col)
	if delta == 0 {
		return FlagResult{}
	}

	r.flags += delta
	return FlagResult{Applied: true, Delta: delta}
}

func (r *Round) conclude(outcome Outcome) {
	r.result = outcome
	r.concluded.Store(true)
	r.log.WithFields(logrus.Fields{
		"outcome": outcome,
		"elapsed": r.elapsed.Load(),
	}).Info("round concluded")
}

// Tick advances the elapsed counter while the round is running. It never
// touches the board.
func (r *Round) Tick() bool {
	if !r.started.Load() || r.concluded.Load() {
		return false
	}
	r.elapsed.Inc()
	return true
}

func (r *Round) Elapsed() int64 {
	return r.elapsed.Load()
}

func (r *Round) Outcome() Outcome {
	return r.result
}

func (r *Round) Concluded() bool {
	return r.concluded.Load()
}

func (r *Round) Started() bool {
	return r.started.Load()
}

func (r *Round) FlagsPlaced() int {
	return r.flags
}

// RemainingMines is the mine count minus the placed flags. It goes negative
// when the player over-flags.
func (r *Round) RemainingMines() int {
	return r.Preset.Mines - r.flags
}

// Hit returns the mine that ended the round, if any.
func (r *Round) Hit() (models.Coord, bool) {
	if r.hit == nil {
		return models.Coord{}, false
	}
	return *r.hit, true
}
