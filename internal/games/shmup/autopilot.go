package shmup

import (
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/sim"
)

const (
	// dangerDepth is how far above the ship a falling mob counts as a threat.
	dangerDepth = 160
	// dangerMargin widens the ship when testing horizontal overlap.
	dangerMargin = 12
	// aimSlack is the horizontal error tolerated when lining up a shot.
	aimSlack = 6
)

// Autopilot chooses controls for a headless run from the last frame.
// It sidesteps the closest mob falling onto the ship, otherwise lines up
// under the nearest mob, and fires every fireEvery ticks.
func Autopilot(f sim.Frame, fireEvery int) core.InputFrame {
	in := core.NewInputFrame()
	if fireEvery > 0 && f.Tick%uint64(fireEvery) == 0 { //#nosec G115 -- fireEvery is positive
		in.Set(core.ActionFire)
	}

	ship, ok := findPlayer(f)
	if !ok {
		return in
	}
	shipX, _ := ship.Center()

	if threat, ok := closestThreat(f, ship); ok {
		tx, _ := threat.Center()
		if tx < shipX {
			in.Set(core.ActionRight)
		} else {
			in.Set(core.ActionLeft)
		}
		return in
	}

	if target, ok := nearestTarget(f, shipX); ok {
		tx, _ := target.Center()
		switch {
		case tx > shipX+aimSlack:
			in.Set(core.ActionRight)
		case tx < shipX-aimSlack:
			in.Set(core.ActionLeft)
		}
	}
	return in
}

func findPlayer(f sim.Frame) (core.Rect, bool) {
	for _, d := range f.Draws {
		if d.Sprite.Kind == sim.KindPlayer {
			return d.Dest, true
		}
	}
	return core.Rect{}, false
}

// closestThreat returns the lowest mob inside the danger zone above the ship.
func closestThreat(f sim.Frame, ship core.Rect) (core.Rect, bool) {
	zone := core.NewRect(ship.X-dangerMargin, ship.Y-dangerDepth, ship.W+2*dangerMargin, ship.H+dangerDepth)

	var best core.Rect
	found := false
	for _, d := range f.Draws {
		if d.Sprite.Kind != sim.KindMob || !d.Dest.Intersects(zone) {
			continue
		}
		if !found || d.Dest.Bottom() > best.Bottom() {
			best, found = d.Dest, true
		}
	}
	return best, found
}

// nearestTarget returns the mob closest to the ship horizontally.
func nearestTarget(f sim.Frame, shipX int) (core.Rect, bool) {
	var best core.Rect
	bestDist := 0
	found := false
	for _, d := range f.Draws {
		if d.Sprite.Kind != sim.KindMob || d.Dest.Bottom() <= 0 {
			continue
		}
		cx, _ := d.Dest.Center()
		dist := core.Abs(cx - shipX)
		if !found || dist < bestDist {
			best, bestDist, found = d.Dest, dist, true
		}
	}
	return best, found
}

// Report summarizes a headless run.
type Report struct {
	Ticks      int
	Millis     int64
	HUD        core.HUD
	GameOver   bool
	LifeLostAt []int          // Ticks on which a life was lost
	Cues       map[string]int // Audio cue counts by ID
}

// RunAutopilot resets g and plays it with Autopilot until the game ends
// or maxTicks ticks have run.
func RunAutopilot(g *Game, rt core.RuntimeConfig, maxTicks, fireEvery int) Report {
	g.Reset(rt)
	r := Report{Cues: make(map[string]int)}

	lives := g.HUD().Lives
	for r.Ticks < maxTicks && !g.State().GameOver {
		res := g.Step(Autopilot(g.Frame(), fireEvery))
		r.Ticks++

		for _, cue := range res.Audio {
			r.Cues[cue.ID]++
		}
		if hud := g.HUD(); hud.Lives < lives {
			r.LifeLostAt = append(r.LifeLostAt, r.Ticks)
			lives = hud.Lives
		}
	}

	r.Millis = rt.TickMillis(r.Ticks)
	r.HUD = g.HUD()
	r.GameOver = g.State().GameOver
	return r
}
