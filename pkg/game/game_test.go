package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

func newTestGame(t *testing.T, kinds ...mino.Kind) *Game {
	t.Helper()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	return NewWithRandomizer(cfg, mino.NewSequence(kinds...))
}

func types(evs []event.Event) []event.Type {
	var ts []event.Type
	for _, ev := range evs {
		ts = append(ts, ev.Type)
	}
	return ts
}

func fillRowExcept(g *mino.Grid, y int, skip ...int) {
	for x := 0; x < g.W; x++ {
		free := false
		for _, s := range skip {
			if s == x {
				free = true
			}
		}
		if !free {
			g.Set(x, y, mino.BlockRed)
		}
	}
}

func TestCadence(t *testing.T) {
	g := newTestGame(t, mino.KindT)

	assert.Equal(t, 30, g.Cadence(false))
	assert.Equal(t, 7, g.Cadence(true))
	assert.Equal(t, 1, g.Level())

	g.Score = 399
	assert.Equal(t, 30, g.Cadence(false))
	g.Score = 400
	assert.Equal(t, 29, g.Cadence(false))
	assert.Equal(t, 2, g.Level())

	g.Score = 4000
	assert.Equal(t, 20, g.Cadence(false))

	g.Score = 100000
	assert.Equal(t, 10, g.Cadence(false))
	assert.Equal(t, 21, g.Level())
	assert.Equal(t, 7, g.Cadence(true))
}

func TestGravity(t *testing.T) {
	g := newTestGame(t, mino.KindT)
	require.Equal(t, 0, g.Piece.Y)

	for i := 0; i < 29; i++ {
		g.Step(Input{})
	}
	assert.Equal(t, 0, g.Piece.Y, "piece fell before the cadence elapsed")

	g.Step(Input{})
	assert.Equal(t, 1, g.Piece.Y)

	for i := 0; i < 30; i++ {
		g.Step(Input{})
	}
	assert.Equal(t, 2, g.Piece.Y)
}

func TestSoftDrop(t *testing.T) {
	g := newTestGame(t, mino.KindT)
	soft := Input{Held: Held{Down: true}}

	for i := 0; i < 7; i++ {
		g.Step(soft)
	}
	assert.Equal(t, 1, g.Piece.Y)

	for i := 0; i < 7; i++ {
		g.Step(soft)
	}
	assert.Equal(t, 2, g.Piece.Y)

	// Releasing reverts to the base cadence straight away.
	for i := 0; i < 29; i++ {
		g.Step(Input{})
	}
	assert.Equal(t, 2, g.Piece.Y)
	g.Step(Input{})
	assert.Equal(t, 3, g.Piece.Y)
}

func TestAutoRepeat(t *testing.T) {
	g := newTestGame(t, mino.KindT)
	left := Input{Held: Held{Left: true}}

	for i := 0; i < 8; i++ {
		g.Step(left)
	}
	assert.Equal(t, 5, g.Piece.X, "moved before the repeat threshold")

	g.Step(left)
	assert.Equal(t, 4, g.Piece.X)

	for i := 0; i < 9; i++ {
		g.Step(left)
	}
	assert.Equal(t, 3, g.Piece.X)

	// Releasing resets the timer.
	for i := 0; i < 5; i++ {
		g.Step(left)
	}
	g.Step(Input{})
	for i := 0; i < 8; i++ {
		g.Step(left)
	}
	assert.Equal(t, 3, g.Piece.X)
}

func TestDiscreteMoves(t *testing.T) {
	g := newTestGame(t, mino.KindT)

	g.Step(Input{Actions: []event.GameAction{event.ActionMoveLeft, event.ActionMoveLeft}})
	assert.Equal(t, 3, g.Piece.X)

	// A rotated T reaches one row up, so it needs to leave the spawn row first.
	evs := g.Step(Input{Actions: []event.GameAction{event.ActionRotate}})
	assert.NotContains(t, types(evs), event.TypeRotate)
	require.True(t, g.Piece.TryMove(0, 1))

	evs = g.Step(Input{Actions: []event.GameAction{event.ActionRotate}})
	assert.Contains(t, types(evs), event.TypeRotate)

	for i := 0; i < 10; i++ {
		g.Step(Input{Actions: []event.GameAction{event.ActionMoveRight}})
	}
	for _, c := range g.Piece.Cells() {
		assert.Less(t, c.X, g.Grid.W)
	}
}

func TestRotateO(t *testing.T) {
	g := newTestGame(t, mino.KindO)
	before := g.Piece.Cells()

	evs := g.Step(Input{Actions: []event.GameAction{event.ActionRotate}})
	assert.NotContains(t, types(evs), event.TypeRotate)
	assert.ElementsMatch(t, before, g.Piece.Cells())
}

func TestHardDropI(t *testing.T) {
	g := newTestGame(t, mino.KindI, mino.KindT)

	evs := g.HardDrop()
	assert.Equal(t, []event.Type{event.TypeHardDrop, event.TypeLock, event.TypeSpawn}, types(evs))

	for y := 16; y < 20; y++ {
		assert.Equal(t, mino.BlockCyan, g.Grid.Cell(5, y), "row %d", y)
	}
	assert.Equal(t, mino.BlockNone, g.Grid.Cell(5, 15))
	assert.Equal(t, mino.KindT, g.Piece.Kind)
	assert.Equal(t, mino.Point{X: 5, Y: 0}, g.Piece.Point)
	assert.Equal(t, 1, g.Pieces)
	assert.Equal(t, 0, g.Score)
}

func TestHardDropO(t *testing.T) {
	g := newTestGame(t, mino.KindO)

	g.Step(Input{Actions: []event.GameAction{event.ActionHardDrop}})

	for _, p := range []mino.Point{{X: 5, Y: 18}, {X: 6, Y: 18}, {X: 5, Y: 19}, {X: 6, Y: 19}} {
		assert.Equal(t, mino.BlockYellow, g.Grid.Cell(p.X, p.Y), "cell %s", p)
	}
}

func TestLockOnGravity(t *testing.T) {
	g := newTestGame(t, mino.KindO, mino.KindT)
	for g.Piece.TryMove(0, 1) {
	}

	var evs []event.Event
	for i := 0; i < 30; i++ {
		evs = append(evs, g.Step(Input{})...)
	}
	assert.Equal(t, []event.Type{event.TypeLock, event.TypeSpawn}, types(evs))
	assert.Equal(t, mino.KindT, g.Piece.Kind)
}

func TestLineClear(t *testing.T) {
	g := newTestGame(t, mino.KindO, mino.KindT)
	fillRowExcept(g.Grid, 19, 5, 6)

	evs := g.HardDrop()
	assert.Equal(t, []event.Type{event.TypeHardDrop, event.TypeLock, event.TypeLineClear}, types(evs))
	assert.Equal(t, 19, evs[2].Row)
	assert.Equal(t, []int{19}, g.RowsToClear())

	// Frozen until compaction.
	snap := g.Snapshot()
	assert.Nil(t, snap.Piece)
	assert.True(t, snap.Flashing(19))
	assert.Empty(t, g.Step(Input{Actions: []event.GameAction{event.ActionMoveLeft}, Held: Held{Down: true}}))
	assert.Empty(t, g.HardDrop())

	evs = g.Compact()
	require.Equal(t, []event.Type{event.TypeScore, event.TypeSpawn}, types(evs))
	assert.Equal(t, 1, evs[0].Rows)
	assert.Equal(t, 100, g.Score)
	assert.Equal(t, 1, g.Lines)
	assert.Empty(t, g.RowsToClear())
	assert.Nil(t, g.Compact())

	// The top half of the O piece settled into the cleared row.
	assert.Equal(t, mino.BlockYellow, g.Grid.Cell(5, 19))
	assert.Equal(t, mino.BlockYellow, g.Grid.Cell(6, 19))
	assert.Equal(t, mino.BlockNone, g.Grid.Cell(0, 19))
	assert.Equal(t, mino.BlockNone, g.Grid.Cell(5, 18))
	assert.Equal(t, mino.KindT, g.Piece.Kind)
}

func TestTetrisScore(t *testing.T) {
	g := newTestGame(t, mino.KindI, mino.KindO)
	for y := 16; y < 20; y++ {
		fillRowExcept(g.Grid, y, 5)
	}

	g.HardDrop()
	assert.Equal(t, []int{16, 17, 18, 19}, g.RowsToClear())
	g.Compact()
	assert.Equal(t, 550, g.Score)
	assert.Equal(t, 4, g.Lines)
	for _, b := range g.Grid.M {
		assert.Equal(t, mino.BlockNone, b)
	}
}

func TestClearScores(t *testing.T) {
	tests := []struct {
		rows  int
		score int
	}{
		{0, 0},
		{1, 100},
		{2, 235},
		{3, 370},
		{4, 550},
	}

	for _, tt := range tests {
		g := newTestGame(t, mino.KindI, mino.KindO)
		for y := 20 - tt.rows; y < 20; y++ {
			fillRowExcept(g.Grid, y, 5)
		}

		evs := g.HardDrop()
		assert.Len(t, g.RowsToClear(), tt.rows, "rows %d", tt.rows)
		if tt.rows > 0 {
			evs = g.Compact()
			require.Equal(t, event.TypeScore, evs[0].Type, "rows %d", tt.rows)
			assert.Equal(t, tt.rows, evs[0].Rows)
		}
		assert.Equal(t, tt.score, g.Score, "rows %d", tt.rows)
		assert.Equal(t, tt.rows, g.Lines, "rows %d", tt.rows)
		assert.Equal(t, mino.KindO, g.Piece.Kind, "rows %d", tt.rows)
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, mino.KindO)
	for y := 2; y < 20; y++ {
		g.Grid.Set(5, y, mino.BlockRed)
		g.Grid.Set(6, y, mino.BlockRed)
	}

	evs := g.HardDrop()
	assert.Equal(t, []event.Type{event.TypeHardDrop, event.TypeLock, event.TypeGameOver}, types(evs))
	assert.Equal(t, ModeGameOver, g.Mode)

	before := g.Grid.Clone()
	for i := 0; i < 100; i++ {
		assert.Empty(t, g.Step(Input{Actions: []event.GameAction{event.ActionHardDrop, event.ActionPause}}))
	}
	assert.Equal(t, before.M, g.Grid.M)

	evs = g.Step(Input{Actions: []event.GameAction{event.ActionRestart}})
	assert.Equal(t, []event.Type{event.TypeRestart, event.TypeSpawn}, types(evs))
	assert.Equal(t, ModeRunning, g.Mode)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, 0, g.Pieces)
	for _, b := range g.Grid.M {
		assert.Equal(t, mino.BlockNone, b)
	}
}

func TestPauseResume(t *testing.T) {
	g := newTestGame(t, mino.KindT)

	evs := g.Step(Input{Actions: []event.GameAction{event.ActionPause}})
	assert.Equal(t, []event.Type{event.TypePause}, types(evs))
	assert.Equal(t, ModePaused, g.Mode)

	for i := 0; i < 100; i++ {
		g.Step(Input{Held: Held{Down: true, Left: true}, Actions: []event.GameAction{event.ActionHardDrop}})
	}
	assert.Equal(t, mino.Point{X: 5, Y: 0}, g.Piece.Point)
	assert.Zero(t, g.Clock.Elapsed)

	evs = g.Step(Input{Actions: []event.GameAction{event.ActionResume}})
	assert.Equal(t, []event.Type{event.TypeResume}, types(evs))
	assert.Equal(t, ModeRunning, g.Mode)
	assert.NotZero(t, g.Clock.Elapsed)
}

func TestRestartFromPause(t *testing.T) {
	g := newTestGame(t, mino.KindI, mino.KindT)
	g.HardDrop()
	g.Score = 1234

	// Restart is ignored while running.
	assert.Empty(t, g.Step(Input{Actions: []event.GameAction{event.ActionRestart}}))
	assert.Equal(t, 1234, g.Score)

	g.Pause()
	g.Step(Input{Actions: []event.GameAction{event.ActionRestart}})
	assert.Equal(t, ModeRunning, g.Mode)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, 0, g.Lines)
	assert.Equal(t, mino.BlockNone, g.Grid.Cell(5, 19))
	assert.Equal(t, mino.KindI, g.Piece.Kind)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, mino.KindI)

	s := g.Snapshot()
	assert.Equal(t, 10, s.Columns)
	assert.Equal(t, 20, s.Rows)
	assert.Len(t, s.Piece, 4)
	assert.Equal(t, mino.BlockCyan, s.PieceBlock)
	assert.ElementsMatch(t, []mino.Point{{X: 5, Y: 16}, {X: 5, Y: 17}, {X: 5, Y: 18}, {X: 5, Y: 19}}, s.Ghost)
	assert.Equal(t, 1, s.Level)

	g.Grid.Set(0, 0, mino.BlockRed)
	assert.Equal(t, mino.BlockNone, s.Cell(0, 0), "snapshot shares cells with the grid")
	assert.Equal(t, mino.BlockNone, s.Cell(-1, 0))
}

func TestClock(t *testing.T) {
	var cl Clock
	for i := 0; i < 75; i++ {
		cl.Tick(time.Second)
	}
	assert.Equal(t, "1:15", cl.String())

	cl.Pause()
	cl.Tick(time.Minute)
	assert.Equal(t, "1:15", cl.String())

	cl.Reset()
	cl.Tick(time.Second)
	assert.Equal(t, "0:01", cl.String())
}

func TestClockFollowsMode(t *testing.T) {
	g := newTestGame(t, mino.KindT)
	for i := 0; i < 60; i++ {
		g.Step(Input{})
	}
	assert.Equal(t, time.Second, g.Clock.Elapsed.Round(time.Millisecond))

	g.Pause()
	for i := 0; i < 60; i++ {
		g.Step(Input{})
	}
	assert.Equal(t, time.Second, g.Clock.Elapsed.Round(time.Millisecond))
}
