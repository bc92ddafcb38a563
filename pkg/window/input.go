package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/game"
)

type keybinding struct {
	keys []ebiten.Key
	a    event.GameAction
}

var keybindings = []keybinding{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}, event.ActionMoveLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}, event.ActionMoveRight},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK, ebiten.KeyX}, event.ActionRotate},
	{[]ebiten.Key{ebiten.KeySpace}, event.ActionHardDrop},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, event.ActionPause},
	{[]ebiten.Key{ebiten.KeyEnter}, event.ActionResume},
	{[]ebiten.Key{ebiten.KeyR}, event.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, event.ActionQuit},
}

var (
	heldLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	heldRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	heldDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}

	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}

	return false
}

// poll reads this frame's keyboard state. The pause keys toggle, and Enter
// restarts once the game is over.
func poll(mode game.Mode) game.Input {
	var in game.Input
	for _, kb := range keybindings {
		if !anyJustPressed(kb.keys) {
			continue
		}

		a := kb.a
		switch {
		case a == event.ActionPause && mode == game.ModePaused:
			a = event.ActionResume
		case a == event.ActionResume && mode == game.ModeGameOver:
			a = event.ActionRestart
		}
		in.Actions = append(in.Actions, a)
	}

	in.Held = game.Held{
		Left:  anyPressed(heldLeft),
		Right: anyPressed(heldRight),
		Down:  anyPressed(heldDown),
	}

	return in
}
