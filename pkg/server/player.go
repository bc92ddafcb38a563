package server

import (
	"regexp"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

const maxNameLength = 16

var nameRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-.]+`)

// Player is one SSH session playing a game.
type Player struct {
	ID   string
	Name string
	Addr string
}

func NewPlayer(user string, addr string) *Player {
	return &Player{
		ID:   uuid.New().String(),
		Name: Nickname(user),
		Addr: addr,
	}
}

// Nickname strips characters that are unsafe on a command line or in the
// terminal. Users that leave nothing behind get a generated name.
func Nickname(nick string) string {
	nick = nameRegexp.ReplaceAllString(strings.TrimSpace(nick), "")
	nick = strings.TrimLeft(nick, "-.")
	if len(nick) > maxNameLength {
		nick = nick[:maxNameLength]
	}
	if nick == "" {
		nick = petname.Generate(2, "-")
	}

	return nick
}
