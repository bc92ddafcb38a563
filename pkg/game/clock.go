package game

import (
	"fmt"
	"time"
)

// Clock measures play time. It only advances while running.
type Clock struct {
	Elapsed time.Duration
	Paused  bool
}

func (cl *Clock) String() string {
	return fmt.Sprintf("%d:%02d", int(cl.Elapsed.Minutes()), int(cl.Elapsed.Seconds())%60)
}

func (cl *Clock) Tick(d time.Duration) {
	if !cl.Paused {
		cl.Elapsed += d
	}
}

func (cl *Clock) Pause() {
	cl.Paused = true
}

func (cl *Clock) Resume() {
	cl.Paused = false
}

func (cl *Clock) Reset() {
	cl.Elapsed = 0
	cl.Paused = false
}
