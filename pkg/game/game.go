package game

import (
	"time"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/log"
	"github.com/qnkhuat/blockfall/pkg/mino"
)

type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game is the simulation state. It is driven one frame at a time by Step
// and is not safe for concurrent use; renderers on other goroutines read
// a Snapshot instead.
type Game struct {
	Config Config

	Grid  *mino.Grid
	Piece *mino.Piece
	Mode  Mode
	Clock Clock

	Score  int
	Lines  int
	Pieces int

	rnd       mino.Randomizer
	fallTimer int
	moveTimer float64

	// Full rows of the last lock, waiting for Compact.
	pending []int
}

// New validates cfg and starts a game with the configured randomizer.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rnd, err := cfg.NewRandomizer()
	if err != nil {
		return nil, err
	}

	return NewWithRandomizer(cfg, rnd), nil
}

// NewWithRandomizer starts a game drawing pieces from rnd. cfg must be valid.
func NewWithRandomizer(cfg Config, rnd mino.Randomizer) *Game {
	g := &Game{
		Config: cfg,
		Grid:   mino.NewGrid(cfg.Columns, cfg.Rows),
		rnd:    rnd,
	}
	g.spawn()

	return g
}

// Cadence returns the number of frames between gravity steps.
func (g *Game) Cadence(soft bool) int {
	if soft {
		return g.Config.SoftDropCadence
	}

	return g.baseCadence()
}

func (g *Game) baseCadence() int {
	c := g.Config.BaseCadence - g.Score/g.Config.SpeedDivisor
	if c < g.Config.MinCadence {
		return g.Config.MinCadence
	}

	return c
}

// Level starts at 1 and rises each time the gravity cadence shortens.
func (g *Game) Level() int {
	return g.Config.BaseCadence - g.baseCadence() + 1
}

// RowsToClear returns the rows that completed on the last lock and still
// wait for Compact. The game is frozen while it is non-empty.
func (g *Game) RowsToClear() []int {
	if len(g.pending) == 0 {
		return nil
	}

	rows := make([]int, len(g.pending))
	copy(rows, g.pending)
	return rows
}

// Step advances the simulation by one frame: discrete actions first, then
// horizontal auto-repeat, then gravity.
func (g *Game) Step(in Input) []event.Event {
	var evs []event.Event

	for _, a := range in.Actions {
		evs = append(evs, g.Apply(a)...)
	}
	if g.Mode != ModeRunning || len(g.pending) > 0 {
		return evs
	}

	g.Clock.Tick(g.Config.FrameDuration())

	if in.Held.Left || in.Held.Right {
		g.moveTimer++
		if g.moveTimer >= g.Config.RepeatThreshold {
			if in.Held.Left {
				g.Piece.TryMove(-1, 0)
			}
			if in.Held.Right {
				g.Piece.TryMove(1, 0)
			}
			g.moveTimer = 0
		}
	} else {
		g.moveTimer = 0
	}

	g.fallTimer++
	if g.fallTimer >= g.Cadence(in.Held.Down) {
		g.fallTimer = 0
		if !g.Piece.TryMove(0, 1) {
			evs = append(evs, g.lock()...)
		}
	}

	return evs
}

// Apply handles one discrete action according to the current mode.
// Actions that do not apply to the mode are ignored.
func (g *Game) Apply(a event.GameAction) []event.Event {
	switch g.Mode {
	case ModeRunning:
		if len(g.pending) > 0 {
			return nil
		}

		switch a {
		case event.ActionMoveLeft:
			g.Piece.TryMove(-1, 0)
		case event.ActionMoveRight:
			g.Piece.TryMove(1, 0)
		case event.ActionRotate:
			if g.Piece.Rotate() {
				return []event.Event{{Type: event.TypeRotate}}
			}
		case event.ActionHardDrop:
			return g.HardDrop()
		case event.ActionPause:
			return g.Pause()
		}
	case ModePaused:
		switch a {
		case event.ActionResume, event.ActionPause:
			return g.Resume()
		case event.ActionRestart:
			return g.Restart()
		}
	case ModeGameOver:
		if a == event.ActionRestart {
			return g.Restart()
		}
	}

	return nil
}

// HardDrop drops the piece as far as it goes and locks it at once.
func (g *Game) HardDrop() []event.Event {
	if g.Mode != ModeRunning || len(g.pending) > 0 {
		return nil
	}

	for g.Piece.TryMove(0, 1) {
	}

	return append([]event.Event{{Type: event.TypeHardDrop}}, g.lock()...)
}

func (g *Game) lock() []event.Event {
	g.Grid.Lock(g.Piece.Cells(), g.Piece.Block())
	g.Pieces++

	evs := []event.Event{{Type: event.TypeLock}}
	if rows := g.Grid.FullRows(); len(rows) > 0 {
		g.pending = rows
		for _, row := range rows {
			evs = append(evs, event.Event{Type: event.TypeLineClear, Row: row})
		}
		return evs
	}

	return append(evs, g.spawn()...)
}

// Compact removes the rows reported by RowsToClear, scores them and spawns
// the next piece.
func (g *Game) Compact() []event.Event {
	if len(g.pending) == 0 {
		return nil
	}
	g.pending = nil

	cleared := g.Grid.ClearFullRows()
	g.Lines += cleared
	g.Score += mino.Score(cleared)
	log.Debug("cleared %d rows, score %d", cleared, g.Score)

	evs := []event.Event{{Type: event.TypeScore, Rows: cleared, Score: g.Score}}
	return append(evs, g.spawn()...)
}

func (g *Game) spawn() []event.Event {
	g.Piece = mino.NewPiece(g.rnd.Next(), g.Grid)
	if g.Piece.Overlaps() {
		g.Mode = ModeGameOver
		g.Clock.Pause()
		log.Info("game over: score %d, lines %d, pieces %d, time %s", g.Score, g.Lines, g.Pieces, &g.Clock)
		return []event.Event{{Type: event.TypeGameOver, Score: g.Score}}
	}

	log.Trace("spawned %s", g.Piece.Kind)
	return []event.Event{{Type: event.TypeSpawn}}
}

func (g *Game) Pause() []event.Event {
	if g.Mode != ModeRunning {
		return nil
	}

	g.Mode = ModePaused
	g.Clock.Pause()
	log.Debug("paused")
	return []event.Event{{Type: event.TypePause}}
}

func (g *Game) Resume() []event.Event {
	if g.Mode != ModePaused {
		return nil
	}

	g.Mode = ModeRunning
	g.Clock.Resume()
	log.Debug("resumed")
	return []event.Event{{Type: event.TypeResume}}
}

// Restart empties the grid and starts over with a fresh piece.
func (g *Game) Restart() []event.Event {
	g.Grid.Reset()
	g.Score = 0
	g.Lines = 0
	g.Pieces = 0
	g.fallTimer = 0
	g.moveTimer = 0
	g.pending = nil
	g.Clock.Reset()
	g.Mode = ModeRunning
	log.Info("restarted")

	return append([]event.Event{{Type: event.TypeRestart}}, g.spawn()...)
}

// Snapshot is a copy of the visible game state.
type Snapshot struct {
	Columns int
	Rows    int
	Cells   []mino.Block

	Piece      []mino.Point
	PieceBlock mino.Block
	Ghost      []mino.Point
	Flash      []int

	Mode    Mode
	Score   int
	Level   int
	Lines   int
	Pieces  int
	Elapsed time.Duration
}

func (s Snapshot) Cell(x int, y int) mino.Block {
	if x < 0 || x >= s.Columns || y < 0 || y >= s.Rows {
		return mino.BlockNone
	}

	return s.Cells[mino.I(x, y, s.Columns)]
}

func (s Snapshot) Flashing(y int) bool {
	for _, row := range s.Flash {
		if row == y {
			return true
		}
	}

	return false
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Columns: g.Grid.W,
		Rows:    g.Grid.H,
		Cells:   make([]mino.Block, len(g.Grid.M)),
		Flash:   g.RowsToClear(),
		Mode:    g.Mode,
		Score:   g.Score,
		Level:   g.Level(),
		Lines:   g.Lines,
		Pieces:  g.Pieces,
		Elapsed: g.Clock.Elapsed,
	}
	copy(s.Cells, g.Grid.M)

	// A locked piece awaiting compaction is already part of the grid.
	if len(g.pending) == 0 {
		s.Piece = g.Piece.Cells()
		s.PieceBlock = g.Piece.Block()
		if g.Mode == ModeRunning {
			s.Ghost = g.Piece.Ghost().Cells()
		}
	}

	return s
}
