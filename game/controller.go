package game

import (
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

// GameController turns player input into round operations. It owns the
// current round and replaces it on restart or difficulty change.
type GameController struct {
	mu     sync.Mutex
	rand   *rand.Rand
	log    logrus.FieldLogger
	preset models.Preset
	round  *Round
}

func NewGameController(preset models.Preset, r *rand.Rand, log logrus.FieldLogger) *GameController {
	c := &GameController{
		rand:   r,
		log:    log,
		preset: preset,
	}
	c.round = c.newRound()
	return c
}

func (c *GameController) newRound() *Round {
	round := NewRound(c.preset, c.rand, c.log)
	c.log.WithFields(logrus.Fields{
		"round":      round.ID,
		"difficulty": c.preset.Name,
	}).Info("round started")
	return round
}

// OnCellPrimaryAction reveals (row, col).
func (c *GameController) OnCellPrimaryAction(row, col int) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.round.HandleReveal(row, col)
}

// OnCellSecondaryAction toggles the flag on (row, col).
func (c *GameController) OnCellSecondaryAction(row, col int) FlagResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.round.ToggleFlag(row, col)
}

// OnRestart discards the current round and starts a fresh one with the same
// difficulty.
func (c *GameController) OnRestart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.round = c.newRound()
}

// OnDifficultyChange starts a fresh round with the given preset.
func (c *GameController) OnDifficultyChange(preset models.Preset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preset = preset
	c.round = c.newRound()
}

// Tick advances the timer of the current round. It reports whether the
// elapsed time changed.
func (c *GameController) Tick() bool {
	c.mu.Lock()
	round := c.round
	c.mu.Unlock()
	return round.Tick()
}

func (c *GameController) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.round.Snapshot()
}

func (c *GameController) Preset() models.Preset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preset
}
