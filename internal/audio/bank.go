package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound and track identifiers understood by the bank.
const (
	SoundShoot     = "shoot"
	SoundExpl1     = "expl1"
	SoundExpl2     = "expl2"
	SoundPlayerDie = "player_die"
	TrackTheme     = "theme"
)

// Bank holds every effect and track pre-rendered at one sample rate.
type Bank struct {
	format  beep.Format
	buffers map[string]*beep.Buffer
}

// NewBank synthesizes all sounds.
func NewBank(rate beep.SampleRate) *Bank {
	b := &Bank{
		format:  beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		buffers: make(map[string]*beep.Buffer),
	}

	b.render(SoundShoot, shootSound(rate))
	b.render(SoundExpl1, explosionSound(rate, 380*time.Millisecond, 70))
	b.render(SoundExpl2, explosionSound(rate, 520*time.Millisecond, 45))
	b.render(SoundPlayerDie, deathSound(rate))
	b.render(TrackTheme, themeTrack(rate))
	return b
}

func (b *Bank) render(id string, s beep.Streamer) {
	buf := beep.NewBuffer(b.format)
	buf.Append(s)
	b.buffers[id] = buf
}

// Has reports whether id names a known sound or track.
func (b *Bank) Has(id string) bool {
	_, ok := b.buffers[id]
	return ok
}

// Streamer returns a fresh playback of id from its start.
func (b *Bank) Streamer(id string) (beep.StreamSeeker, bool) {
	buf, ok := b.buffers[id]
	if !ok {
		return nil, false
	}
	return buf.Streamer(0, buf.Len()), true
}

// Len returns the length of id in samples, or 0 if unknown.
func (b *Bank) Len(id string) int {
	if buf, ok := b.buffers[id]; ok {
		return buf.Len()
	}
	return 0
}

// shootSound is a short falling laser chirp.
func shootSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	chirp := NewEnvelope(NewSweep(1400, 350, d, WaveSquare, rate), d, 2*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(chirp, 0.35)
}

// explosionSound is a noise burst over a low rumble.
func explosionSound(rate beep.SampleRate, d time.Duration, rumble float64) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, d*3/4, rate)
	low := NewEnvelope(NewSweep(rumble*2, rumble, d, WaveSine, rate), d, 5*time.Millisecond, d/2, rate)
	return beep.Mix(
		newVolume(noise, 0.45),
		newVolume(low, 0.5),
	)
}

// deathSound is a long falling saw with a crackling tail.
func deathSound(rate beep.SampleRate) beep.Streamer {
	d := 1200 * time.Millisecond
	fall := NewEnvelope(NewSweep(660, 55, d, WaveSaw, rate), d, 10*time.Millisecond, 600*time.Millisecond, rate)
	tail := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 200*time.Millisecond, 900*time.Millisecond, rate)
	return beep.Mix(
		newVolume(fall, 0.4),
		newVolume(tail, 0.25),
	)
}

// Theme pattern: sixteenth notes at 132 BPM, four bars in A minor.
// Zero is a rest.
var (
	themeStep = time.Minute / 132 / 4

	themeLead = []int{
		69, 0, 72, 76, 0, 72, 69, 0, 71, 0, 74, 77, 0, 74, 71, 0,
		72, 0, 76, 79, 0, 76, 72, 0, 71, 74, 76, 74, 71, 0, 68, 0,
		69, 0, 72, 76, 0, 72, 69, 0, 77, 0, 76, 74, 0, 72, 74, 0,
		76, 0, 74, 72, 71, 0, 69, 0, 68, 0, 71, 74, 76, 0, 0, 0,
	}
	themeBass = []int{
		45, 45, 57, 45, 45, 45, 57, 45, 43, 43, 55, 43, 43, 43, 55, 43,
		41, 41, 53, 41, 41, 41, 53, 41, 40, 40, 52, 40, 40, 40, 52, 40,
		45, 45, 57, 45, 45, 45, 57, 45, 41, 41, 53, 41, 43, 43, 55, 43,
		40, 40, 52, 40, 40, 40, 52, 40, 40, 40, 52, 40, 44, 44, 56, 44,
	}
)

// themeTrack is one loop of the background music.
func themeTrack(rate beep.SampleRate) beep.Streamer {
	lead := make([]beep.Streamer, 0, len(themeLead))
	for _, n := range themeLead {
		lead = append(lead, tone(noteFreq(n), themeStep, WaveSquare, rate))
	}
	bass := make([]beep.Streamer, 0, len(themeBass))
	for _, n := range themeBass {
		bass = append(bass, tone(noteFreq(n), themeStep, WaveSaw, rate))
	}

	return beep.Mix(
		newVolume(beep.Seq(lead...), 0.18),
		newVolume(beep.Seq(bass...), 0.28),
	)
}
