package event

// Type identifies something that happened during a simulation step.
type Type int

const (
	TypeUnknown Type = iota
	TypeRotate
	TypeHardDrop
	TypeLock
	TypeLineClear
	TypeScore
	TypeSpawn
	TypeGameOver
	TypePause
	TypeResume
	TypeRestart
)

func (t Type) String() string {
	switch t {
	case TypeRotate:
		return "rotate"
	case TypeHardDrop:
		return "hard-drop"
	case TypeLock:
		return "lock"
	case TypeLineClear:
		return "line-clear"
	case TypeScore:
		return "score"
	case TypeSpawn:
		return "spawn"
	case TypeGameOver:
		return "game-over"
	case TypePause:
		return "pause"
	case TypeResume:
		return "resume"
	case TypeRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for presentation and audio.
type Event struct {
	Type Type

	Row   int // TypeLineClear: row index being cleared
	Rows  int // TypeScore: rows cleared at once
	Score int // TypeScore, TypeGameOver: total score afterwards
}
