package gui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/game"
)

// DefaultHoldWindow is how long after its last key event a key still counts
// as held. Terminals only report presses, repeated while the key is down.
// It stays below the repeat threshold so a tap moves exactly once.
const DefaultHoldWindow = 120 * time.Millisecond

type heldKey int

const (
	heldNone heldKey = iota
	heldLeft
	heldRight
	heldDown
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
	h heldKey
}

var keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft, h: heldLeft},
	{r: 'h', a: event.ActionMoveLeft, h: heldLeft},
	{r: 'a', a: event.ActionMoveLeft, h: heldLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight, h: heldRight},
	{r: 'l', a: event.ActionMoveRight, h: heldRight},
	{r: 'd', a: event.ActionMoveRight, h: heldRight},
	{k: tcell.KeyDown, h: heldDown},
	{r: 'j', h: heldDown},
	{r: 's', h: heldDown},
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'w', a: event.ActionRotate},
	{r: 'x', a: event.ActionRotate},
	{r: ' ', a: event.ActionHardDrop},
	{k: tcell.KeyEnter, a: event.ActionHardDrop},
	{r: 'p', a: event.ActionPause},
	{k: tcell.KeyEscape, a: event.ActionPause},
	{r: 'r', a: event.ActionRestart},
	{r: 'q', a: event.ActionQuit},
	{k: tcell.KeyCtrlC, a: event.ActionQuit},
}

func (kb *Keybinding) matches(ev *tcell.EventKey) bool {
	if kb.k != 0 {
		if kb.k != ev.Key() {
			return false
		}
	} else if ev.Key() != tcell.KeyRune || kb.r != ev.Rune() {
		return false
	}

	return kb.m == 0 || kb.m == ev.Modifiers()
}

func lookup(ev *tcell.EventKey) *Keybinding {
	for _, kb := range keybindings {
		if kb.matches(ev) {
			return kb
		}
	}

	return nil
}

// Keyboard turns terminal key events into game input. Key events arrive on
// the UI goroutine and Poll is called from the game loop.
type Keyboard struct {
	HoldWindow time.Duration

	now func() time.Time

	actions []event.GameAction
	seen    map[heldKey]time.Time

	sync.Mutex
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		HoldWindow: DefaultHoldWindow,
		now:        time.Now,
		seen:       make(map[heldKey]time.Time),
	}
}

// Queue adds a discrete action for the next poll.
func (kb *Keyboard) Queue(a event.GameAction) {
	kb.Lock()
	defer kb.Unlock()

	kb.actions = append(kb.actions, a)
}

// HandleKey records ev and reports whether it was consumed. While the game
// is not running only the menu shortcuts are consumed so the menus keep
// their own navigation.
func (kb *Keyboard) HandleKey(ev *tcell.EventKey, mode game.Mode) bool {
	bind := lookup(ev)
	if bind == nil {
		return false
	}

	kb.Lock()
	defer kb.Unlock()

	if mode != game.ModeRunning {
		switch {
		case bind.a == event.ActionQuit, bind.a == event.ActionRestart:
			kb.actions = append(kb.actions, bind.a)
		case bind.a == event.ActionPause && mode == game.ModePaused && bind.r == 'p':
			kb.actions = append(kb.actions, event.ActionResume)
		default:
			return false
		}
		return true
	}

	now := kb.now()
	if bind.h != heldNone {
		// A repeat of a key already held only extends the hold; the
		// simulation's auto-repeat moves the piece.
		repeat := kb.isHeld(bind.h, now)
		kb.seen[bind.h] = now
		if repeat {
			return true
		}
	}
	if bind.a != event.ActionUnknown {
		kb.actions = append(kb.actions, bind.a)
	}

	return true
}

func (kb *Keyboard) isHeld(h heldKey, now time.Time) bool {
	t, ok := kb.seen[h]
	return ok && now.Sub(t) < kb.HoldWindow
}

// Poll returns and clears the queued actions along with the held state.
func (kb *Keyboard) Poll() game.Input {
	kb.Lock()
	defer kb.Unlock()

	now := kb.now()
	in := game.Input{
		Actions: kb.actions,
		Held: game.Held{
			Left:  kb.isHeld(heldLeft, now),
			Right: kb.isHeld(heldRight, now),
			Down:  kb.isHeld(heldDown, now),
		},
	}
	kb.actions = nil

	return in
}
