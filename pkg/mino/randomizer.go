package mino

import (
	"fmt"
	"math/rand"
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Randomizer chooses the kind of each spawned piece.
type Randomizer interface {
	Next() Kind
}

// NewRandomizer returns the randomizer registered under name, seeded with seed.
func NewRandomizer(name string, seed int64) (Randomizer, error) {
	switch name {
	case "", RandomizerUniform:
		return NewUniform(seed), nil
	case RandomizerBag:
		return NewBag(seed), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", name)
	}
}

// Uniform draws each kind independently with equal probability.
type Uniform struct {
	r *rand.Rand
}

func NewUniform(seed int64) *Uniform {
	return &Uniform{r: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Next() Kind {
	return AllKinds[u.r.Intn(len(AllKinds))]
}

// Bag deals all seven kinds in a shuffled order before reshuffling.
type Bag struct {
	Kinds []Kind

	r *rand.Rand
	i int
}

func NewBag(seed int64) *Bag {
	b := &Bag{r: rand.New(rand.NewSource(seed))}

	b.shuffle()

	return b
}

func (b *Bag) Next() Kind {
	k := b.Kinds[b.i]
	if b.i == len(b.Kinds)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return k
}

func (b *Bag) shuffle() {
	if b.Kinds == nil {
		b.Kinds = make([]Kind, len(AllKinds))
	}
	copy(b.Kinds, AllKinds)

	b.r.Shuffle(len(b.Kinds), func(i, j int) { b.Kinds[i], b.Kinds[j] = b.Kinds[j], b.Kinds[i] })
}

// Sequence replays a fixed list of kinds, wrapping around at the end. An
// empty Sequence replays AllKinds.
type Sequence struct {
	Kinds []Kind

	i int
}

func NewSequence(kinds ...Kind) *Sequence {
	return &Sequence{Kinds: kinds}
}

func (s *Sequence) Next() Kind {
	if len(s.Kinds) == 0 {
		s.Kinds = AllKinds
	}

	k := s.Kinds[s.i%len(s.Kinds)]
	s.i++
	return k
}
