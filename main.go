// FILE: main.go
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/petridecus/viso/anim"
	"github.com/petridecus/viso/audio"
	"github.com/petridecus/viso/clock"
	"github.com/petridecus/viso/config"
	"github.com/petridecus/viso/render"
	"github.com/petridecus/viso/vmath"
)

const (
	demoResidues = 24
	frameMs      = 16
)

// Viewer is the interactive structure animation demo: a synthetic
// peptide on screen, keys triggering each action with randomly
// perturbed targets
type Viewer struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	animator *anim.Animator
	player   *audio.Player
	store    *config.Store
	rng      *rand.Rand

	// Base conformation the perturbations derive from
	baseChains [][]vmath.Vec3
	baseChis   [][]float64

	lastAction   anim.Action
	wasAnimating bool
	audioInit    bool
}

// NewViewer sets up the screen, audio, persisted preferences, and the
// initial structure
func NewViewer() (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	manager, err := gdata.Open(gdata.Config{AppName: "viso"})
	if err != nil {
		// Degraded mode: preferences live in memory only
		log.Printf("Preference storage unavailable: %v", err)
		manager = nil
	}
	store, err := config.NewStore(manager)
	if err != nil {
		log.Printf("Failed to load preferences: %v (using defaults)", err)
	}

	v := &Viewer{
		screen:     screen,
		renderer:   render.NewTerminalRenderer(screen),
		animator:   anim.NewAnimatorWith(anim.NewControllerWith(store.Preferences()), clock.NewMonotonic()),
		player:     audio.NewPlayer(0.4),
		store:      store,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		lastAction: anim.ActionLoad,
	}

	if err := v.player.Initialize(); err != nil {
		// Non-fatal, the viewer works without sound
		log.Printf("Audio initialization failed: %v", err)
	} else {
		v.audioInit = true
	}

	v.baseChains = helixBackbone(demoResidues)
	v.baseChis = make([][]float64, demoResidues)
	for i := range v.baseChis {
		v.baseChis[i] = []float64{v.rng.Float64()*360 - 180}
	}

	v.animator.SetTarget(v.baseChains, anim.ActionLoad)
	v.applySidechains(anim.ActionLoad, false)

	return v, nil
}

// helixBackbone builds an idealized alpha-helix backbone: three atoms
// per residue winding around a straight axis
func helixBackbone(residues int) [][]vmath.Vec3 {
	const (
		risePerResidue = 1.5
		radius         = 2.3
		turnPerResidue = 100.0 * math.Pi / 180.0
	)

	chain := make([]vmath.Vec3, 0, residues*3)
	for i := 0; i < residues; i++ {
		caAngle := float64(i) * turnPerResidue
		z := float64(i) * risePerResidue

		ca := vmath.Vec3{
			X: radius * math.Cos(caAngle),
			Y: radius * math.Sin(caAngle),
			Z: z,
		}
		n := vmath.Vec3{
			X: radius * math.Cos(caAngle-0.6),
			Y: radius * math.Sin(caAngle-0.6),
			Z: z - 0.5,
		}
		c := vmath.Vec3{
			X: radius * math.Cos(caAngle+0.6),
			Y: radius * math.Sin(caAngle+0.6),
			Z: z + 0.5,
		}
		chain = append(chain, n, ca, c)
	}
	return [][]vmath.Vec3{chain}
}

// perturbedChains jitters every backbone atom by up to amplitude
func (v *Viewer) perturbedChains(amplitude float64) [][]vmath.Vec3 {
	out := make([][]vmath.Vec3, len(v.baseChains))
	for c, chain := range v.baseChains {
		moved := make([]vmath.Vec3, len(chain))
		for i, p := range chain {
			moved[i] = vmath.Vec3{
				X: p.X + (v.rng.Float64()*2-1)*amplitude,
				Y: p.Y + (v.rng.Float64()*2-1)*amplitude,
				Z: p.Z + (v.rng.Float64()*2-1)*amplitude,
			}
		}
		out[c] = moved
	}
	return out
}

// applySidechains derives one synthetic sidechain atom per residue from
// the chi angles and feeds it to the animator
func (v *Viewer) applySidechains(action anim.Action, rotate bool) {
	chain := v.baseChains[0]

	positions := make([]vmath.Vec3, 0, demoResidues)
	residueIndices := make([]int, 0, demoResidues)
	cas := make([]vmath.Vec3, 0, demoResidues)

	for i := 0; i < demoResidues; i++ {
		if rotate {
			v.baseChis[i][0] = v.rng.Float64()*360 - 180
		}
		ca := chain[i*3+1]
		chi := v.baseChis[i][0] * math.Pi / 180

		// Sidechain atom sticks out radially, tilted by chi
		positions = append(positions, vmath.Vec3{
			X: ca.X * 1.6,
			Y: ca.Y * 1.6,
			Z: ca.Z + math.Sin(chi)*0.8,
		})
		residueIndices = append(residueIndices, i)
		cas = append(cas, ca)
	}

	v.animator.SetSidechainTargetForAction(positions, residueIndices, cas, action)
}

// trigger fires one action with an appropriately perturbed target
func (v *Viewer) trigger(action anim.Action) {
	v.lastAction = action

	switch action {
	case anim.ActionWiggle:
		v.baseChains = v.perturbedChains(0.6)
		v.applySidechains(action, false)
	case anim.ActionShake:
		// Sidechain-only change, backbone stays put
		v.applySidechains(action, true)
	case anim.ActionMutation:
		v.applySidechains(action, true)
	case anim.ActionDiffusion:
		v.baseChains = v.perturbedChains(1.2)
	case anim.ActionDiffusionFinalize:
		v.baseChains = v.perturbedChains(0.8)
		v.applySidechains(action, true)
	case anim.ActionReveal:
		v.baseChains = v.perturbedChains(2.5)
		v.applySidechains(action, false)
	case anim.ActionLoad:
		v.baseChains = helixBackbone(demoResidues)
		v.applySidechains(action, false)
	}

	v.animator.SetTarget(v.baseChains, action)

	if v.audioInit {
		v.player.PlayAction(action)
	}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'w':
			v.trigger(anim.ActionWiggle)
		case 's':
			v.trigger(anim.ActionShake)
		case 'm':
			v.trigger(anim.ActionMutation)
		case 'd':
			v.trigger(anim.ActionDiffusion)
		case 'f':
			v.trigger(anim.ActionDiffusionFinalize)
		case 'r':
			v.trigger(anim.ActionReveal)
		case 'l':
			v.trigger(anim.ActionLoad)
		case ' ':
			v.animator.Skip()
		case 'c':
			v.animator.Cancel()
		case 'a':
			v.animator.SetEnabled(!v.animator.IsEnabled())
		}

	case *tcell.EventResize:
		v.screen.Sync()
		v.renderer.UpdateDimensions()
	}

	return true
}

func (v *Viewer) draw() {
	behavior := ""
	if v.animator.IsAnimating() {
		behavior = v.store.Preferences().Get(v.lastAction).Name()
	}

	v.renderer.RenderFrame(render.Frame{
		Chains:         v.animator.Backbone(),
		Sidechains:     v.animator.SidechainPositions(),
		ShowSidechains: v.animator.ShouldIncludeSidechains(),
		Progress:       v.animator.Progress(),
		Animating:      v.animator.IsAnimating(),
		Action:         v.lastAction.String(),
		Behavior:       behavior,
		Enabled:        v.animator.IsEnabled(),
	})
}

func (v *Viewer) run() {
	ticker := time.NewTicker(frameMs * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			v.animator.Update(time.Now())

			if v.wasAnimating && !v.animator.IsAnimating() && v.audioInit {
				v.player.PlayCompletion()
			}
			v.wasAnimating = v.animator.IsAnimating()

			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	if err := v.store.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
	v.player.Cleanup()
	v.screen.Fini()
}

func main() {
	viewer, err := NewViewer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
