package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/qnkhuat/blockfall/pkg/event"
	"github.com/qnkhuat/blockfall/pkg/log"
)

const (
	sampleRate = beep.SampleRate(44100)

	clearSpacing = 70 * time.Millisecond
)

// Player plays a synthesized cue for game events. Until Init succeeds, and
// after Close, Play does nothing.
type Player struct {
	Muted bool

	mixer       *beep.Mixer
	initialized bool

	// Number of consecutive row clears, to stagger their chimes.
	clears int

	mu sync.Mutex
}

func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	log.Debug("audio initialized at %d Hz", sampleRate)
	return nil
}

// Play implements game.Sounder. It never blocks on the device.
func (p *Player) Play(ev event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.cue(ev)
	if s == nil || !p.initialized || p.Muted {
		return
	}

	speaker.Lock()
	p.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: -1.5})
	speaker.Unlock()
}

// cue returns the sound for ev, or nil when ev has none.
func (p *Player) cue(ev event.Event) beep.Streamer {
	if ev.Type != event.TypeLineClear {
		p.clears = 0
	}

	switch ev.Type {
	case event.TypeRotate:
		return NewTone(880, 990, 45*time.Millisecond, WaveSine, sampleRate)
	case event.TypeHardDrop:
		return NewTone(180, 60, 110*time.Millisecond, WaveSquare, sampleRate)
	case event.TypeLineClear:
		n := p.clears
		p.clears++
		freq := 660 * (1 + 0.25*float64(n))
		return beep.Seq(
			beep.Silence(sampleRate.N(time.Duration(n)*clearSpacing)),
			NewTone(freq, freq*1.5, 160*time.Millisecond, WaveSine, sampleRate),
		)
	case event.TypeGameOver:
		return NewTone(440, 110, 800*time.Millisecond, WaveSaw, sampleRate)
	default:
		return nil
	}
}

// Close stops every playing cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
