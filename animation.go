package chartcore

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously and calls an
// apply function after each step. Charts own their groups and advance them
// from Tick; there is no global animation manager.
//
// gween works in float32, so each tween drives a 0..1 progress value and the
// fields are interpolated in float64. Large domain values such as unix
// timestamps keep their precision and land exactly on the target.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	from   [4]float64
	to     [4]float64
	apply  func()
	Done   bool
}

func newTweenGroup(apply func(), duration float32, fn ease.TweenFunc, pairs ...tweenField) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{apply: apply}
	for _, p := range pairs {
		if g.count == len(g.tweens) {
			break
		}
		g.tweens[g.count] = gween.New(0, 1, duration, fn)
		g.fields[g.count] = p.field
		g.from[g.count] = *p.field
		g.to[g.count] = p.to
		g.count++
	}
	return g
}

type tweenField struct {
	field *float64
	to    float64
}

// Update advances all tweens by dt seconds, writes the values and calls the
// apply function.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		progress, finished := g.tweens[i].Update(dt)
		if finished {
			*g.fields[i] = g.to[i]
		} else {
			*g.fields[i] = g.from[i] + (g.to[i]-g.from[i])*float64(progress)
			allDone = false
		}
	}
	g.Done = allDone
	if g.apply != nil {
		g.apply()
	}
}

// --- Animator ---

// Animator drives the PhaseX and PhaseY values renderers multiply into
// entry positions while a chart animates in. Both phases rest at 1.
type Animator struct {
	PhaseX, PhaseY float64

	group *TweenGroup
	// OnUpdate is called after every animation step.
	OnUpdate func()
}

// NewAnimator creates an animator with both phases at 1.
func NewAnimator() *Animator {
	return &Animator{PhaseX: 1, PhaseY: 1}
}

// Animate runs both phases from 0 to 1 over the given durations in seconds.
// A non-positive duration leaves that phase at 1.
func (a *Animator) Animate(durationX, durationY float32, fn ease.TweenFunc) {
	a.Stop()
	var fields []tweenField
	if durationX > 0 {
		a.PhaseX = 0
		fields = append(fields, tweenField{&a.PhaseX, 1})
	}
	if durationY > 0 {
		a.PhaseY = 0
		fields = append(fields, tweenField{&a.PhaseY, 1})
	}
	if len(fields) == 0 {
		return
	}
	a.group = newTweenGroup(a.onUpdate, max(durationX, durationY), fn, fields...)
	if durationX > 0 && durationY > 0 && durationX != durationY {
		// Each phase keeps its own duration.
		a.group.tweens[0] = gween.New(0, 1, durationX, easeOrLinear(fn))
		a.group.tweens[1] = gween.New(0, 1, durationY, easeOrLinear(fn))
	}
}

// AnimateX runs PhaseX from 0 to 1.
func (a *Animator) AnimateX(duration float32, fn ease.TweenFunc) { a.Animate(duration, 0, fn) }

// AnimateY runs PhaseY from 0 to 1.
func (a *Animator) AnimateY(duration float32, fn ease.TweenFunc) { a.Animate(0, duration, fn) }

// Active reports whether an animation is running.
func (a *Animator) Active() bool { return a.group != nil && !a.group.Done }

// Stop ends any running animation and leaves both phases at 1.
func (a *Animator) Stop() {
	a.group = nil
	a.PhaseX, a.PhaseY = 1, 1
}

// Update advances the animation by dt seconds.
func (a *Animator) Update(dt float32) {
	if !a.Active() {
		return
	}
	a.group.Update(dt)
	if a.group.Done {
		a.group = nil
	}
}

func (a *Animator) onUpdate() {
	if a.OnUpdate != nil {
		a.OnUpdate()
	}
}

func easeOrLinear(fn ease.TweenFunc) ease.TweenFunc {
	if fn == nil {
		return ease.Linear
	}
	return fn
}
