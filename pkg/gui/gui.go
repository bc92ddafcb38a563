package gui

import (
	"context"
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/blockfall/pkg/game"
	"github.com/qnkhuat/blockfall/pkg/log"
)

// GUI is the terminal frontend. It is the Source and Renderer of a game.Loop.
type GUI struct {
	App      *tview.Application
	View     *GameView
	Keyboard *Keyboard
	Theme    Theme
	Name     string

	// Latest snapshot and whether a draw of it is already queued. Only one
	// draw is ever queued so the loop never blocks on a busy terminal.
	snap   game.Snapshot
	queued bool
	snapMu sync.Mutex
}

func New(cfg game.Config, name string, theme Theme) *GUI {
	app := tview.NewApplication()
	kb := NewKeyboard()

	g := &GUI{
		App:      app,
		View:     newGameView(cfg.Columns, cfg.Rows, kb),
		Keyboard: kb,
		Theme:    theme,
		Name:     name,
	}

	app.SetInputCapture(g.handleKeypress)
	app.SetRoot(g.View.Pages, true).SetFocus(g.View.Board)

	return g
}

func (g *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if g.Keyboard.HandleKey(ev, g.View.mode) {
		return nil
	}

	return ev
}

// Poll implements game.Source
func (g *GUI) Poll() game.Input {
	return g.Keyboard.Poll()
}

// Render implements game.Renderer
func (g *GUI) Render(s game.Snapshot) {
	g.snapMu.Lock()
	g.snap = s
	if g.queued {
		g.snapMu.Unlock()
		return
	}
	g.queued = true
	g.snapMu.Unlock()

	g.App.QueueUpdateDraw(g.draw)
}

func (g *GUI) draw() {
	g.snapMu.Lock()
	s := g.snap
	g.queued = false
	g.snapMu.Unlock()

	if focus := g.View.update(s, g.Name, g.Theme); focus != nil {
		g.App.SetFocus(focus)
	}
}

// Run drives loop while the terminal application runs. It returns when the
// player quits, ctx is cancelled or the terminal fails.
func (g *GUI) Run(ctx context.Context, loop *game.Loop) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		g.App.Stop()
		done <- err
	}()

	if err := g.App.Run(); err != nil {
		cancel()
		<-done
		return err
	}

	// The application also stops on its own, e.g. when the screen is lost.
	cancel()
	err := <-done
	if errors.Is(err, context.Canceled) {
		log.Debug("terminal closed")
		return nil
	}
	return err
}
