package mino

import (
	"sort"
	"strings"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

var AllKinds = []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Mino is a set of cell offsets relative to a piece anchor, y growing downward.
type Mino []Point

var shapes = map[Kind]Mino{
	KindI: {{0, 0}, {0, -1}, {0, 1}, {0, 2}},
	KindO: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	KindT: {{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
	KindL: {{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
	KindJ: {{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
	KindS: {{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
	KindZ: {{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
}

// Shape returns a copy of the canonical spawn offsets of the kind.
func (k Kind) Shape() Mino {
	s, ok := shapes[k]
	if !ok {
		return nil
	}

	m := make(Mino, len(s))
	copy(m, s)
	return m
}

func (k Kind) Block() Block {
	switch k {
	case KindI:
		return BlockCyan
	case KindO:
		return BlockYellow
	case KindT:
		return BlockPurple
	case KindL:
		return BlockOrange
	case KindJ:
		return BlockBlue
	case KindS:
		return BlockGreen
	case KindZ:
		return BlockRed
	default:
		return BlockNone
	}
}

// Rotate returns the mino turned a quarter turn about the anchor.
func (m Mino) Rotate() Mino {
	r := make(Mino, len(m))
	for i := range m {
		r[i] = m[i].Rotate90()
	}

	return r
}

// Equal reports whether both minos hold the same set of offsets.
func (m Mino) Equal(other Mino) bool {
	if len(m) != len(other) {
		return false
	}

	for i := 0; i < len(m); i++ {
		if !m.HasPoint(other[i]) {
			return false
		}
	}

	return true
}

func (m Mino) HasPoint(p Point) bool {
	for _, mp := range m {
		if mp == p {
			return true
		}
	}

	return false
}

func (m Mino) String() string {
	newMino := make(Mino, len(m))
	copy(newMino, m)

	sort.Sort(newMino)

	var b strings.Builder
	for i := range newMino {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(newMino[i].String())
	}

	return b.String()
}

func (m Mino) Len() int      { return len(m) }
func (m Mino) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Mino) Less(i, j int) bool {
	return m[i].Y < m[j].Y || (m[i].Y == m[j].Y && m[i].X < m[j].X)
}
