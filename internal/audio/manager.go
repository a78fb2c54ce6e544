// Package audio plays the shooter's sound effects and music through the
// system speaker. Sounds are synthesized at startup; nothing is loaded from
// disk.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink consumes audio cues emitted by a game step.
type Sink interface {
	Play(cue core.AudioCue)
	Close()
}

// Nop is a Sink that drops every cue. Used when audio is muted or
// unavailable.
type Nop struct{}

// Play implements Sink.
func (Nop) Play(core.AudioCue) {}

// Close implements Sink.
func (Nop) Close() {}

// Options configures a Manager.
type Options struct {
	EffectsVolume float64 // 0.0 to 1.0
	MusicVolume   float64 // Multiplies the per-cue volume
	Logger        *log.Logger
}

// Manager mixes effects and one music track into the speaker.
type Manager struct {
	mu     sync.Mutex
	locker sync.Locker // Guards the mixer against the speaker goroutine
	bank   *Bank
	mixer  *beep.Mixer
	opts   Options

	music   *beep.Ctrl
	musicID string

	initialized bool
}

// speakerLocker locks the speaker's playback loop.
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// NewManager synthesizes the sound bank. Call Init before playing.
func NewManager(opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Manager{
		locker: speakerLocker{},
		bank:   NewBank(sampleRate),
		mixer:  &beep.Mixer{},
		opts:   opts,
	}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play starts a sound or switches the music track. Unknown ids are logged
// and ignored.
func (m *Manager) Play(cue core.AudioCue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	switch cue.Kind {
	case core.CueSound:
		m.playSound(cue.ID)
	case core.CueMusic:
		m.playMusic(cue)
	}
}

func (m *Manager) playSound(id string) {
	s, ok := m.bank.Streamer(id)
	if !ok {
		m.opts.Logger.Warn("unknown sound", "id", id)
		return
	}

	m.locker.Lock()
	m.mixer.Add(newVolume(s, m.opts.EffectsVolume))
	m.locker.Unlock()
}

// playMusic replaces the current track. A cue for the track already
// playing is ignored.
func (m *Manager) playMusic(cue core.AudioCue) {
	if m.music != nil && !m.music.Paused && m.musicID == cue.ID {
		return
	}

	s, ok := m.bank.Streamer(cue.ID)
	if !ok {
		m.opts.Logger.Warn("unknown music track", "id", cue.ID)
		return
	}

	var track beep.Streamer = s
	if cue.Loop {
		track = beep.Loop(-1, s)
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(track, cue.Volume*m.opts.MusicVolume)}

	m.locker.Lock()
	if m.music != nil {
		m.music.Paused = true
		m.music.Streamer = nil
	}
	m.mixer.Add(ctrl)
	m.locker.Unlock()

	m.music = ctrl
	m.musicID = cue.ID
	m.opts.Logger.Debug("music started", "track", cue.ID, "loop", cue.Loop)
}

// StopMusic silences the current track.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	m.locker.Lock()
	m.music.Paused = true
	m.music.Streamer = nil
	m.locker.Unlock()
	m.music = nil
	m.musicID = ""
}

// Close stops all sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.locker.Lock()
	m.mixer.Clear()
	m.locker.Unlock()

	// beep has no way to release the device short of process exit;
	// clearing the mixer leaves it playing silence.
	m.music = nil
	m.musicID = ""
	m.initialized = false
}

// Open returns a started Manager, or Nop when audio is muted or the
// speaker cannot be opened.
func Open(muted bool, opts Options) Sink {
	if muted {
		return Nop{}
	}

	m := NewManager(opts)
	if err := m.Init(); err != nil {
		m.opts.Logger.Warn("audio disabled", "err", err)
		return Nop{}
	}
	return m
}
