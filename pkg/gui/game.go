package gui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/game"
)

const (
	pageGame     = "game"
	pagePause    = "pause"
	pageGameOver = "gameover"
)

// GameView holds the widgets of one game screen
type GameView struct {
	Pages    *tview.Pages
	Board    *tview.TextView
	Side     *tview.TextView
	Pause    *tview.Modal
	GameOver *tview.Modal

	mode game.Mode
}

func newGameView(cols, rows int, kb *Keyboard) *GameView {
	board := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(false)
	side := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(false)

	width := cols*blockWidth + 2
	height := rows + 1

	layout := tview.NewGrid().
		SetRows(-1, height, -1).
		SetColumns(-1, width, 2, sideWidth, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 5, 0, 0, false).
		AddItem(board, 1, 1, 1, 1, 0, 0, true).
		AddItem(side, 1, 3, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 5, 0, 0, false)

	done := func(resume bool) func(int, string) {
		return func(_ int, label string) {
			if a, ok := menuActions[label]; ok {
				kb.Queue(a)
			} else if resume {
				kb.Queue(event.ActionResume)
			}
		}
	}

	pause := tview.NewModal().
		SetText("Paused").
		AddButtons(pauseButtons).
		SetDoneFunc(done(true))
	gameOver := tview.NewModal().
		SetText("Game over").
		AddButtons(gameOverButtons).
		SetDoneFunc(done(false))

	pages := tview.NewPages().
		AddPage(pageGame, layout, true, true).
		AddPage(pagePause, pause, true, false).
		AddPage(pageGameOver, gameOver, true, false)

	return &GameView{Pages: pages, Board: board, Side: side, Pause: pause, GameOver: gameOver}
}

// update redraws the widgets and switches menus on mode changes. It must
// run on the UI goroutine and returns the widget that should have focus
// when the mode changed.
func (v *GameView) update(s game.Snapshot, name string, t Theme) tview.Primitive {
	v.Board.SetText(renderBoard(s, t))
	v.Side.SetText(renderSide(s, name, t))

	if s.Mode == v.mode {
		return nil
	}
	v.mode = s.Mode

	switch s.Mode {
	case game.ModePaused:
		v.Pages.HidePage(pageGameOver)
		v.Pages.ShowPage(pagePause)
		return v.Pause
	case game.ModeGameOver:
		v.GameOver.SetText(fmt.Sprintf("Game over\n\nScore %d  Lines %d", s.Score, s.Lines))
		v.Pages.HidePage(pagePause)
		v.Pages.ShowPage(pageGameOver)
		return v.GameOver
	default:
		v.Pages.HidePage(pagePause)
		v.Pages.HidePage(pageGameOver)
		return v.Board
	}
}
