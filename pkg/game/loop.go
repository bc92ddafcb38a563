package game

import (
	"context"
	"time"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/log"
)

// Source reports the input gathered since the previous poll.
type Source interface {
	Poll() Input
}

// Renderer presents a snapshot of the game.
type Renderer interface {
	Render(Snapshot)
}

// Sounder plays the cue for an event. Play must not block.
type Sounder interface {
	Play(event.Event)
}

// Loop runs a Game at the configured tick rate until the player quits or
// the context is cancelled.
type Loop struct {
	Game     *Game
	Source   Source
	Renderer Renderer
	Sounder  Sounder

	// Sleep waits out the clear flash. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Run returns nil when the player quits and the context error when ctx ends.
func (l *Loop) Run(ctx context.Context) error {
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	ticker := time.NewTicker(l.Game.Config.FrameDuration())
	defer ticker.Stop()

	log.Debug("loop started at %d Hz", l.Game.Config.TickRate)
	l.Renderer.Render(l.Game.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		in := l.Source.Poll()
		if in.Has(event.ActionQuit) {
			log.Debug("quit requested")
			return nil
		}

		l.play(l.Game.Step(in))

		if rows := l.Game.RowsToClear(); len(rows) > 0 {
			l.Renderer.Render(l.Game.Snapshot())
			sleep(time.Duration(l.Game.Config.FlashDelay))

			// Input is frozen during the flash.
			if l.Source.Poll().Has(event.ActionQuit) {
				return nil
			}
			l.play(l.Game.Compact())
		}

		l.Renderer.Render(l.Game.Snapshot())
	}
}

func (l *Loop) play(evs []event.Event) {
	if l.Sounder == nil {
		return
	}

	for _, ev := range evs {
		l.Sounder.Play(ev)
	}
}
