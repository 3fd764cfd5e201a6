package models

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPreset is returned by PresetByName for names outside Presets.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Preset fixes the board dimensions and mine count of a round.
type Preset struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

var (
	Easy   = Preset{Name: "easy", Rows: 9, Cols: 9, Mines: 10}
	Medium = Preset{Name: "medium", Rows: 16, Cols: 16, Mines: 40}
	Hard   = Preset{Name: "hard", Rows: 16, Cols: 30, Mines: 99}
)

// Presets lists the difficulties in increasing order.
var Presets = []Preset{Easy, Medium, Hard}

// Cells returns the number of cells of a board built from the preset.
func (p Preset) Cells() int {
	return p.Rows * p.Cols
}

// SafeCells returns the number of cells a player has to reveal to win.
func (p Preset) SafeCells() int {
	return p.Cells() - p.Mines
}

// PresetByName looks a preset up by its case-insensitive name.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(strings.TrimSpace(name), p.Name) {
			return p, nil
		}
	}
	return Preset{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
}
