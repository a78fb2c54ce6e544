// Package registry maps mode IDs to game constructors. Game packages
// register from init, and the front end looks modes up by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Game is a playable mode as the terminal front end sees it. It owns no
// terminal, clock or audio device: the front end feeds it one InputFrame
// per tick and plays back whatever the returned StepResult carries.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session sized and seeded by cfg. It is called
	// before the first Step and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. dst may have been resized since the
	// previous call.
	Render(dst *core.Screen)

	State() core.GameState
}

// HUDProvider is implemented by games that expose head-up display values
// beyond the score, such as a shield gauge and remaining lives.
type HUDProvider interface {
	HUD() core.HUD
}

// GameInfo names a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, un-Reset game.
type Factory func() Game

type entry struct {
	title string
	build Factory
}

var (
	mu    sync.RWMutex
	modes = map[string]entry{}
)

// Register adds a mode. Registering the same ID twice panics.
func Register(id string, build Factory) {
	title := build().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	modes[id] = entry{title: title, build: build}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := modes[id]
	return ok
}
