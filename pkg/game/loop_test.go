package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

type scriptedSource struct {
	inputs []Input
	polls  int
}

func (s *scriptedSource) Poll() Input {
	s.polls++
	if len(s.inputs) == 0 {
		return Input{}
	}

	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in
}

type recordingRenderer struct {
	snaps []Snapshot
}

func (r *recordingRenderer) Render(s Snapshot) {
	r.snaps = append(r.snaps, s)
}

type recordingSounder struct {
	evs []event.Event
}

func (r *recordingSounder) Play(ev event.Event) {
	r.evs = append(r.evs, ev)
}

func actions(a ...event.GameAction) Input {
	return Input{Actions: a}
}

func newTestLoop(t *testing.T, src Source, kinds ...mino.Kind) (*Loop, *recordingRenderer, *recordingSounder) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.TickRate = 1000
	require.NoError(t, cfg.Validate())

	r := &recordingRenderer{}
	s := &recordingSounder{}
	l := &Loop{
		Game:     NewWithRandomizer(cfg, mino.NewSequence(kinds...)),
		Source:   src,
		Renderer: r,
		Sounder:  s,
	}
	return l, r, s
}

func TestLoopQuit(t *testing.T) {
	src := &scriptedSource{inputs: []Input{{}, {}, actions(event.ActionQuit)}}
	l, r, _ := newTestLoop(t, src, mino.KindT)

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 3, src.polls)
	// Initial frame plus one per completed step.
	assert.Len(t, r.snaps, 3)
}

func TestLoopCancel(t *testing.T) {
	l, _, _ := newTestLoop(t, &scriptedSource{}, mino.KindT)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, l.Run(ctx), context.DeadlineExceeded)
}

func TestLoopClearFlash(t *testing.T) {
	src := &scriptedSource{inputs: []Input{
		actions(event.ActionHardDrop),
		actions(event.ActionMoveLeft, event.ActionRotate),
		actions(event.ActionQuit),
	}}
	l, r, s := newTestLoop(t, src, mino.KindO, mino.KindT)
	fillRowExcept(l.Game.Grid, 19, 5, 6)

	var slept []time.Duration
	l.Sleep = func(d time.Duration) { slept = append(slept, d) }

	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, []time.Duration{300 * time.Millisecond}, slept)

	var flashed bool
	for _, snap := range r.snaps {
		if snap.Flashing(19) {
			flashed = true
			assert.Nil(t, snap.Piece)
		}
	}
	assert.True(t, flashed, "no snapshot showed the clearing row")

	assert.Equal(t, []event.Type{
		event.TypeHardDrop, event.TypeLock, event.TypeLineClear,
		event.TypeScore, event.TypeSpawn,
	}, types(s.evs))
	assert.Equal(t, 100, l.Game.Score)

	// Input polled during the flash was dropped.
	assert.Equal(t, mino.Point{X: 5, Y: 0}, l.Game.Piece.Point)
	assert.True(t, l.Game.Piece.Mino.Equal(mino.KindT.Shape()))
}

func TestLoopWithoutSounder(t *testing.T) {
	src := &scriptedSource{inputs: []Input{actions(event.ActionHardDrop), actions(event.ActionQuit)}}
	l, _, _ := newTestLoop(t, src, mino.KindI)
	l.Sounder = nil

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 1, l.Game.Pieces)
}
