package event

// GameAction is a discrete player command.
type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionRotate
	ActionMoveLeft
	ActionMoveRight
	ActionHardDrop
	ActionPause
	ActionResume
	ActionRestart
	ActionQuit
)

func (a GameAction) String() string {
	switch a {
	case ActionRotate:
		return "rotate"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionHardDrop:
		return "hard-drop"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
