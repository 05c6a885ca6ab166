package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the jamming hum and the capture chirp.
type SoundManager struct {
	mu          sync.Mutex
	humStreamer *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.humStreamer != nil {
		sm.humStreamer.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.humStreamer = nil
	sm.initialized = false
}

// SetJamming starts or pauses the looping jammer hum. It is cheap to call
// every tick with an unchanged value.
func (sm *SoundManager) SetJamming(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.humStreamer == nil {
		if !on {
			return
		}
		// The hum generator never ends, no loop needed.
		sm.humStreamer = &beep.Ctrl{Streamer: NewHumGenerator(sampleRate), Paused: false}
		speaker.Lock()
		sm.mixer.Add(sm.humStreamer)
		speaker.Unlock()
		return
	}
	speaker.Lock()
	sm.humStreamer.Paused = !on
	speaker.Unlock()
}

// PlayCapture plays a short rising chirp.
func (sm *SoundManager) PlayCapture() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*250), NewChirpGenerator(sampleRate, 440, 1320))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// HumGenerator produces a warbling noise band, the audible stand-in for an
// active jammer.
type HumGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewHumGenerator creates a hum generator
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{sr: sr, seed: 1}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// 4 Hz warble over a 90 Hz carrier
		warble := 0.5 + 0.5*math.Sin(2*math.Pi*4*t)
		carrier := math.Sin(2 * math.Pi * 90 * t)
		sample := 0.08 * (carrier*warble + 0.3*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// ChirpGenerator sweeps linearly from one frequency to another over one
// second with a fast attack.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp generator
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := g.from + (g.to-g.from)*math.Min(t, 1)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*6)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
