package gui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/game"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyboard() (*Keyboard, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	kb := NewKeyboard()
	kb.now = clock.now
	return kb, clock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyboardTap(t *testing.T) {
	kb, clock := newTestKeyboard()

	assert.True(t, kb.HandleKey(key(tcell.KeyLeft), game.ModeRunning))

	in := kb.Poll()
	assert.Equal(t, []event.GameAction{event.ActionMoveLeft}, in.Actions)
	assert.True(t, in.Held.Left)

	clock.advance(DefaultHoldWindow)
	in = kb.Poll()
	assert.Empty(t, in.Actions)
	assert.False(t, in.Held.Left)
}

func TestKeyboardHeldRepeat(t *testing.T) {
	kb, clock := newTestKeyboard()

	kb.HandleKey(char('l'), game.ModeRunning)
	for i := 0; i < 10; i++ {
		clock.advance(30 * time.Millisecond)
		kb.HandleKey(char('l'), game.ModeRunning)
	}

	in := kb.Poll()
	assert.Equal(t, []event.GameAction{event.ActionMoveRight}, in.Actions, "repeats must not add moves")
	assert.True(t, in.Held.Right)
	assert.False(t, in.Held.Left)
}

func TestKeyboardSoftDrop(t *testing.T) {
	kb, clock := newTestKeyboard()

	kb.HandleKey(key(tcell.KeyDown), game.ModeRunning)
	in := kb.Poll()
	assert.Empty(t, in.Actions)
	assert.True(t, in.Held.Down)

	clock.advance(time.Second)
	assert.False(t, kb.Poll().Held.Down)
}

func TestKeyboardDiscrete(t *testing.T) {
	kb, _ := newTestKeyboard()

	for _, ev := range []*tcell.EventKey{key(tcell.KeyUp), char(' '), char('p'), key(tcell.KeyCtrlC)} {
		assert.True(t, kb.HandleKey(ev, game.ModeRunning))
	}
	assert.False(t, kb.HandleKey(char('?'), game.ModeRunning))

	assert.Equal(t, []event.GameAction{
		event.ActionRotate, event.ActionHardDrop, event.ActionPause, event.ActionQuit,
	}, kb.Poll().Actions)
}

func TestKeyboardMenus(t *testing.T) {
	kb, _ := newTestKeyboard()

	// Menu navigation passes through to the modal.
	assert.False(t, kb.HandleKey(key(tcell.KeyLeft), game.ModePaused))
	assert.False(t, kb.HandleKey(key(tcell.KeyEnter), game.ModePaused))
	assert.False(t, kb.HandleKey(key(tcell.KeyEscape), game.ModePaused))
	assert.Empty(t, kb.Poll().Actions)

	assert.True(t, kb.HandleKey(char('p'), game.ModePaused))
	assert.True(t, kb.HandleKey(char('r'), game.ModeGameOver))
	assert.False(t, kb.HandleKey(char('p'), game.ModeGameOver))
	assert.True(t, kb.HandleKey(char('q'), game.ModeGameOver))

	assert.Equal(t, []event.GameAction{
		event.ActionResume, event.ActionRestart, event.ActionQuit,
	}, kb.Poll().Actions)
}

func TestKeyboardQueue(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.Queue(event.ActionRestart)

	assert.Equal(t, []event.GameAction{event.ActionRestart}, kb.Poll().Actions)
	assert.Empty(t, kb.Poll().Actions)
}
