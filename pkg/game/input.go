package game

import (
	"github.com/qnkhuat/blockfall/pkg/event"
)

// Held is the level-triggered state of the continuous controls.
type Held struct {
	Left  bool
	Right bool
	Down  bool
}

// Input is everything a frontend observed since the previous step.
type Input struct {
	Actions []event.GameAction
	Held    Held
}

func (in Input) Has(a event.GameAction) bool {
	for _, action := range in.Actions {
		if action == a {
			return true
		}
	}

	return false
}
