package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

const (
	boardPage = "board"
	modalPage = "modal"
)

var difficultyKeys = map[rune]models.Preset{
	'1': models.Easy,
	'2': models.Medium,
	'3': models.Hard,
}

// MinesweeperService runs the terminal UI. Every board mutation happens on
// the tview event goroutine; the timer goroutine only ticks the round and
// queues a status redraw.
type MinesweeperService struct {
	controller *GameController
	renderer   *Renderer
	app        *tview.Application
	pages      *tview.Pages
	tick       time.Duration
	log        logrus.FieldLogger
}

func NewMinesweeperService(controller *GameController, tick time.Duration, log logrus.FieldLogger) *MinesweeperService {
	return &MinesweeperService{
		controller: controller,
		renderer:   NewRenderer(),
		tick:       tick,
		log:        log,
	}
}

// Run blocks until the player quits or ctx is cancelled.
func (s *MinesweeperService) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.app = tview.NewApplication()
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.renderer.status, 1, 0, false).
		AddItem(s.renderer.boardTable, 0, 1, true)
	s.pages = tview.NewPages().AddPage(boardPage, layout, true, true)
	s.app.SetRoot(s.pages, true)

	s.renderer.DrawBoard(s.controller.View())
	s.renderer.boardTable.Select(0, 0)
	s.handleInput()

	go s.runTimer(ctx)
	go func() {
		<-ctx.Done()
		s.app.Stop()
	}()

	s.log.Info("terminal ui started")
	return s.app.Run()
}

func (s *MinesweeperService) runTimer(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.controller.Tick() {
				continue
			}
			s.app.QueueUpdateDraw(func() {
				s.renderer.DrawStatus(s.controller.View())
			})
		}
	}
}

func (s *MinesweeperService) handleInput() {
	s.renderer.boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		row, col := s.renderer.boardTable.GetSelection()

		switch event.Key() {
		case tcell.KeyEnter:
			s.reveal(row, col)
			return nil
		case tcell.KeyEscape:
			s.app.Stop()
			return nil
		case tcell.KeyRune:
			switch r := event.Rune(); r {
			case ' ':
				s.reveal(row, col)
			case 'f', 'F':
				s.flag(row, col)
			case 'r', 'R':
				s.restart(nil)
			case '1', '2', '3':
				preset := difficultyKeys[r]
				s.restart(&preset)
			case 'q', 'Q':
				s.app.Stop()
			default:
				return event
			}
			return nil
		}

		return event
	})
}

func (s *MinesweeperService) reveal(row, col int) {
	outcome := s.controller.OnCellPrimaryAction(row, col)
	view := s.controller.View()
	s.renderer.DrawBoard(view)

	if outcome != Continue {
		s.showEndDialog(view)
	}
}

func (s *MinesweeperService) flag(row, col int) {
	if res := s.controller.OnCellSecondaryAction(row, col); !res.Applied {
		return
	}
	view := s.controller.View()
	s.renderer.RenderCell(view.Cells[row][col], row, col)
	s.renderer.DrawStatus(view)
}

// restart starts a new round, switching difficulty when preset is not nil.
func (s *MinesweeperService) restart(preset *models.Preset) {
	if preset != nil {
		s.controller.OnDifficultyChange(*preset)
	} else {
		s.controller.OnRestart()
	}

	view := s.controller.View()
	s.renderer.DrawBoard(view)

	row, col := s.renderer.boardTable.GetSelection()
	if row >= view.Rows || col >= view.Cols {
		s.renderer.boardTable.Select(0, 0)
	}
}

func (s *MinesweeperService) showEndDialog(view View) {
	modal := tview.NewModal().
		SetText(endMessage(view)).
		AddButtons([]string{"Restart", "Quit"}).
		SetDoneFunc(func(_ int, label string) {
			s.pages.RemovePage(modalPage)
			s.app.SetFocus(s.renderer.boardTable)
			if label == "Quit" {
				s.app.Stop()
				return
			}
			s.restart(nil)
		})

	s.pages.AddPage(modalPage, modal, false, true)
	s.app.SetFocus(modal)
}
