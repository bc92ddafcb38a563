package mino

import (
	"strings"
)

// Grid is the playfield: W columns by H rows of blocks, row 0 at the top.
// Rows above the top (y < 0) are open space that is never stored.
type Grid struct {
	W int // Width
	H int // Height

	M []Block
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewGrid(w int, h int) *Grid {
	return &Grid{W: w, H: h, M: make([]Block, w*h)}
}

func (g *Grid) inBounds(x int, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Cell returns the content of a cell, BlockNone outside the grid.
func (g *Grid) Cell(x int, y int) Block {
	if !g.inBounds(x, y) {
		return BlockNone
	}

	return g.M[I(x, y, g.W)]
}

// IsOccupied reports whether a cell holds a locked block. Cells above the
// top edge are always free. Cells beside or below the grid count as walls.
func (g *Grid) IsOccupied(x int, y int) bool {
	if y < 0 {
		return false
	}
	if x < 0 || x >= g.W || y >= g.H {
		return true
	}

	return g.M[I(x, y, g.W)] != BlockNone
}

func (g *Grid) Set(x int, y int, b Block) bool {
	if !g.inBounds(x, y) {
		return false
	}

	g.M[I(x, y, g.W)] = b
	return true
}

// Lock writes b into every in-bounds cell. Cells outside the grid, usually
// above the top edge, are dropped.
func (g *Grid) Lock(cells []Point, b Block) {
	for _, p := range cells {
		g.Set(p.X, p.Y, b)
	}
}

func (g *Grid) LineFilled(y int) bool {
	for x := 0; x < g.W; x++ {
		if g.M[I(x, y, g.W)] == BlockNone {
			return false
		}
	}

	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < g.H; y++ {
		if g.LineFilled(y) {
			rows = append(rows, y)
		}
	}

	return rows
}

// ClearFullRows removes every row that is full right now, lets the rows above
// settle in their original order and refills the top with empty rows. It
// returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	full := make([]bool, g.H)
	cleared := 0
	for y := 0; y < g.H; y++ {
		if g.LineFilled(y) {
			full[y] = true
			cleared++
		}
	}
	if cleared == 0 {
		return 0
	}

	dst := g.H - 1
	for y := g.H - 1; y >= 0; y-- {
		if full[y] {
			continue
		}
		if dst != y {
			copy(g.M[I(0, dst, g.W):I(0, dst+1, g.W)], g.M[I(0, y, g.W):I(0, y+1, g.W)])
		}
		dst--
	}
	for y := dst; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			g.M[I(x, y, g.W)] = BlockNone
		}
	}

	return cleared
}

func (g *Grid) Reset() {
	for i := range g.M {
		g.M[i] = BlockNone
	}
}

func (g *Grid) Clone() *Grid {
	n := NewGrid(g.W, g.H)
	copy(n.M, g.M)
	return n
}

func (g *Grid) Render() string {
	var b strings.Builder

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteRune(g.Cell(x, y).Rune())
		}

		if y == g.H-1 {
			break
		}

		b.WriteRune('\n')
	}

	return b.String()
}
