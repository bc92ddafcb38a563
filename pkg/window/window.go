package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/game"
	"github.com/qnkhuat/blockfall/pkg/log"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

const (
	cellSize  = 28
	margin    = 24
	sideWidth = 200
)

// Window is the desktop frontend. It implements ebiten.Game and steps the
// simulation once per ebiten tick.
type Window struct {
	Game    *game.Game
	Sounder game.Sounder
	Palette Palette
	Name    string

	// Frames left of the clear flash.
	flash int
}

func New(g *game.Game, sounder game.Sounder, name string) *Window {
	return &Window{Game: g, Sounder: sounder, Palette: DefaultPalette, Name: name}
}

// Run opens the window and blocks until it is closed or the player quits.
func (w *Window) Run() error {
	cfg := w.Game.Config
	width, height := w.Layout(0, 0)

	ebiten.SetWindowTitle("blockfall")
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (w *Window) flashFrames() int {
	d := time.Duration(w.Game.Config.FlashDelay)
	n := int(d / w.Game.Config.FrameDuration())
	if n < 1 {
		n = 1
	}

	return n
}

func (w *Window) Update() error {
	if w.flash > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}

		w.flash--
		if w.flash == 0 {
			w.play(w.Game.Compact())
		}
		return nil
	}

	in := poll(w.Game.Mode)
	if in.Has(event.ActionQuit) {
		log.Debug("quit requested")
		return ebiten.Termination
	}

	w.play(w.Game.Step(in))
	if len(w.Game.RowsToClear()) > 0 {
		w.flash = w.flashFrames()
	}

	return nil
}

func (w *Window) play(evs []event.Event) {
	if w.Sounder == nil {
		return
	}

	for _, ev := range evs {
		w.Sounder.Play(ev)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := w.Game.Config
	return margin*3 + cfg.Columns*cellSize + sideWidth, margin*2 + cfg.Rows*cellSize
}

func (w *Window) drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	px := float32(margin + x*cellSize)
	py := float32(margin + y*cellSize)
	vector.DrawFilledRect(screen, px+1, py+1, cellSize-2, cellSize-2, c, false)
}

func (w *Window) Draw(screen *ebiten.Image) {
	s := w.Game.Snapshot()
	p := w.Palette

	screen.Fill(p.Background)

	wellW := float32(s.Columns * cellSize)
	wellH := float32(s.Rows * cellSize)
	vector.DrawFilledRect(screen, margin, margin, wellW, wellH, p.Well, false)
	vector.StrokeRect(screen, margin-1, margin-1, wellW+2, wellH+2, 1, p.Grid, false)

	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Columns; x++ {
			switch b := s.Cell(x, y); {
			case s.Flashing(y):
				w.drawCell(screen, x, y, p.Flash)
			case b != mino.BlockNone:
				w.drawCell(screen, x, y, p.Block(b))
			default:
				w.drawCell(screen, x, y, p.Grid)
			}
		}
	}

	for _, c := range s.Ghost {
		if c.Y >= 0 {
			w.drawCell(screen, c.X, c.Y, p.Ghost(s.PieceBlock))
		}
	}
	for _, c := range s.Piece {
		if c.Y >= 0 {
			w.drawCell(screen, c.X, c.Y, p.Block(s.PieceBlock))
		}
	}

	clock := game.Clock{Elapsed: s.Elapsed}
	side := fmt.Sprintf("BLOCKFALL\n\nPlayer  %s\nScore   %d\nLevel   %d\nLines   %d\nPieces  %d\nTime    %s\n\n"+
		"arrows  move / rotate\ndown    soft drop\nspace   hard drop\np       pause\nq       quit",
		w.Name, s.Score, s.Level, s.Lines, s.Pieces, clock.String())
	ebitenutil.DebugPrintAt(screen, side, margin*2+s.Columns*cellSize, margin)

	var msg string
	switch s.Mode {
	case game.ModePaused:
		msg = "PAUSED\n\np / enter  resume\nr          restart\nq          quit"
	case game.ModeGameOver:
		msg = fmt.Sprintf("GAME OVER\n\nscore %d\n\nenter / r  restart\nq          quit", s.Score)
	default:
		return
	}
	vector.DrawFilledRect(screen, margin, margin, wellW, wellH, p.Overlay, false)
	ebitenutil.DebugPrintAt(screen, msg, margin+cellSize, margin+int(wellH)/3)
}
