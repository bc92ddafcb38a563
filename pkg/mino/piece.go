package mino

// Kicks are the horizontal shifts tried, in order, when a rotation does not
// fit in place.
var Kicks = []Point{{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {2, 0}}

// Piece is the falling tetromino: an anchor on the grid plus four offsets.
type Piece struct {
	Point
	Kind Kind
	Mino Mino

	grid *Grid
}

// NewPiece places a piece of kind k at the spawn anchor, the top center of g.
func NewPiece(k Kind, g *Grid) *Piece {
	return &Piece{Point: Point{g.W / 2, 0}, Kind: k, Mino: k.Shape(), grid: g}
}

func (p *Piece) Block() Block {
	return p.Kind.Block()
}

// Cells returns the absolute grid position of every cell of the piece.
func (p *Piece) Cells() []Point {
	return p.cellsAt(p.Mino, p.Point)
}

func (p *Piece) cellsAt(m Mino, loc Point) []Point {
	cells := make([]Point, len(m))
	for i := range m {
		cells[i] = m[i].Add(loc)
	}

	return cells
}

// canPlace reports whether every cell of the offsets at loc lies on the grid
// and clear of locked blocks.
func (p *Piece) canPlace(m Mino, loc Point) bool {
	for _, c := range p.cellsAt(m, loc) {
		if c.X < 0 || c.X >= p.grid.W || c.Y < 0 || c.Y >= p.grid.H {
			return false
		}
		if p.grid.IsOccupied(c.X, c.Y) {
			return false
		}
	}

	return true
}

// Overlaps reports whether any on-grid cell of the piece covers a locked block.
func (p *Piece) Overlaps() bool {
	for _, c := range p.Cells() {
		if c.Y >= 0 && c.X >= 0 && c.X < p.grid.W && c.Y < p.grid.H && p.grid.IsOccupied(c.X, c.Y) {
			return true
		}
	}

	return false
}

// TryMove shifts the piece by (dx, dy) if the result is legal.
func (p *Piece) TryMove(dx int, dy int) bool {
	loc := p.Point.Add(Point{dx, dy})
	if !p.canPlace(p.Mino, loc) {
		return false
	}

	p.Point = loc
	return true
}

// Rotate turns the piece a quarter turn, trying each of Kicks in order and
// keeping the first that fits. The O piece never rotates.
func (p *Piece) Rotate() bool {
	if p.Kind == KindO {
		return false
	}

	rotated := p.Mino.Rotate()
	for _, k := range Kicks {
		loc := p.Point.Add(k)
		if p.canPlace(rotated, loc) {
			p.Mino = rotated
			p.Point = loc
			return true
		}
	}

	return false
}

// Ghost returns a copy of the piece dropped as far as it can fall.
func (p *Piece) Ghost() *Piece {
	g := p.Clone()
	for g.TryMove(0, 1) {
	}

	return g
}

func (p *Piece) Clone() *Piece {
	m := make(Mino, len(p.Mino))
	copy(m, p.Mino)

	return &Piece{Point: p.Point, Kind: p.Kind, Mino: m, grid: p.grid}
}
