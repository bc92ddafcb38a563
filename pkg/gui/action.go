package gui

import (
	"github.com/qnkhuat/blockfall/pkg/event"
)

// Menu button labels
const (
	ActionResume  = "Resume"
	ActionRestart = "Restart"
	ActionQuit    = "Quit"
)

var menuActions = map[string]event.GameAction{
	ActionResume:  event.ActionResume,
	ActionRestart: event.ActionRestart,
	ActionQuit:    event.ActionQuit,
}

var (
	pauseButtons    = []string{ActionResume, ActionRestart, ActionQuit}
	gameOverButtons = []string{ActionRestart, ActionQuit}
)
