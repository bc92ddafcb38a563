package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/blockfall/pkg/game"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

const (
	blockWidth = 2
	sideWidth  = 24
)

const (
	runeBlock = '█'
	runeGhost = '▒'
	runeEmpty = '·'
)

// colorTag returns the tview dynamic color tag for c
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

// cell is one board position after layering piece and ghost over the grid
type cell struct {
	r rune
	c tcell.Color
}

func boardCells(s game.Snapshot, t Theme) []cell {
	cells := make([]cell, s.Columns*s.Rows)
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Columns; x++ {
			b := s.Cell(x, y)
			switch {
			case s.Flashing(y):
				cells[mino.I(x, y, s.Columns)] = cell{runeBlock, t.Flash}
			case b != mino.BlockNone:
				cells[mino.I(x, y, s.Columns)] = cell{runeBlock, t.Block(b)}
			default:
				cells[mino.I(x, y, s.Columns)] = cell{runeEmpty, t.Empty}
			}
		}
	}

	put := func(points []mino.Point, r rune, c tcell.Color) {
		for _, p := range points {
			if p.X < 0 || p.X >= s.Columns || p.Y < 0 || p.Y >= s.Rows {
				continue
			}
			cells[mino.I(p.X, p.Y, s.Columns)] = cell{r, c}
		}
	}
	put(s.Ghost, runeGhost, t.Ghost)
	put(s.Piece, runeBlock, t.Block(s.PieceBlock))

	return cells
}

// renderBoard draws the playfield as tview dynamic color text
func renderBoard(s game.Snapshot, t Theme) string {
	var b strings.Builder
	cells := boardCells(s, t)
	border := colorTag(t.Border)

	for y := 0; y < s.Rows; y++ {
		b.WriteString(border)
		b.WriteRune('│')

		var last tcell.Color
		for x := 0; x < s.Columns; x++ {
			c := cells[mino.I(x, y, s.Columns)]
			if x == 0 || c.c != last {
				b.WriteString(colorTag(c.c))
				last = c.c
			}
			for i := 0; i < blockWidth; i++ {
				if c.r == runeEmpty && i > 0 {
					b.WriteRune(' ')
					continue
				}
				b.WriteRune(c.r)
			}
		}

		b.WriteString(border)
		b.WriteRune('│')
		b.WriteRune('\n')
	}

	b.WriteString(border)
	b.WriteRune('└')
	b.WriteString(strings.Repeat("─", s.Columns*blockWidth))
	b.WriteRune('┘')
	b.WriteString("[-]")

	return b.String()
}

// renderSide draws the player name and statistics
func renderSide(s game.Snapshot, name string, t Theme) string {
	var b strings.Builder
	label := colorTag(t.Label)
	text := colorTag(t.Text)

	row := func(k string, v interface{}) {
		fmt.Fprintf(&b, "%s%-8s%s%v\n", label, k, text, v)
	}

	b.WriteString(text + "[::b]BLOCKFALL[::-]\n\n")
	row("Player", tview.Escape(name))
	row("Score", s.Score)
	row("Level", s.Level)
	row("Lines", s.Lines)
	row("Pieces", s.Pieces)
	clock := game.Clock{Elapsed: s.Elapsed}
	row("Time", clock.String())

	b.WriteString("\n" + label)
	b.WriteString("←/→  move\n")
	b.WriteString("↑    rotate\n")
	b.WriteString("↓    soft drop\n")
	b.WriteString("spc  hard drop\n")
	b.WriteString("p    pause\n")
	b.WriteString("q    quit[-]")

	return b.String()
}
