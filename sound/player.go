// Package sound plays short cues for game events.
package sound

import (
	"math"
	"sync"
	"time"

	"gridsnake/game"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	foodFreq    = 880
	speedUpFreq = 1320
	buzzFreq    = 120
)

// Player mixes event cues into the speaker. A Player that failed to Init or
// was never initialized stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player. volume is in halvings: 0 is unchanged, -1 is
// half as loud.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	glog.Infof("Sound: speaker at %d Hz", sampleRate)
	return nil
}

// Close stops every queued cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Handle queues the cue of every event that has one.
func (p *Player) Handle(res game.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	for _, e := range res.Events {
		cue := Cue(e.Type)
		if cue == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(&effects.Volume{Streamer: cue, Base: 2, Volume: p.volume})
		speaker.Unlock()
	}
}

// Cue returns a fresh streamer for an event type, or nil when the event is
// silent.
func Cue(t game.EventType) beep.Streamer {
	switch t {
	case game.EventFoodEaten:
		return blip(foodFreq, 60*time.Millisecond)
	case game.EventSpeedUp:
		return beep.Seq(blip(foodFreq, 50*time.Millisecond), blip(speedUpFreq, 80*time.Millisecond))
	case game.EventGameOver:
		return beep.Take(sampleRate.N(300*time.Millisecond), NewBuzzGenerator(sampleRate, buzzFreq))
	}
	return nil
}

func blip(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		// freq is a constant well below the Nyquist limit
		panic(err)
	}
	return beep.Take(sampleRate.N(d), &effects.Volume{Streamer: sine, Base: 2, Volume: -2})
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
