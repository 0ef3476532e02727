package chartcore

import (
	"errors"
	"fmt"
)

// ErrGestureActive is returned when a gesture begins while another one is
// still in progress.
var ErrGestureActive = errors.New("chartcore: another gesture is active")

// GestureState is the state of a chart's gesture state machine.
type GestureState uint8

const (
	GestureIdle GestureState = iota
	GesturePanning
	GestureScaling
	GestureRotating
	GestureDecelerating
)

var gestureStateNames = [...]string{"idle", "panning", "scaling", "rotating", "decelerating"}

func (s GestureState) String() string {
	if int(s) < len(gestureStateNames) {
		return gestureStateNames[s]
	}
	return "unknown"
}

// GestureKind identifies the gesture driving a transition.
type GestureKind uint8

const (
	GesturePan GestureKind = iota
	GesturePinch
	GestureRotate
)

func (k GestureKind) activeState() GestureState {
	switch k {
	case GesturePinch:
		return GestureScaling
	case GestureRotate:
		return GestureRotating
	}
	return GesturePanning
}

// GestureMachine tracks which gesture currently owns the touch matrix.
// Exactly one of panning, scaling or rotating may be active; a new gesture
// may start from idle or interrupt deceleration.
type GestureMachine struct {
	state GestureState
	// OnTransition is called after every state change.
	OnTransition func(from, to GestureState)
}

// State returns the current state.
func (g *GestureMachine) State() GestureState { return g.state }

// Is reports whether kind is the active gesture.
func (g *GestureMachine) Is(kind GestureKind) bool { return g.state == kind.activeState() }

// Begin enters the active state for kind. It fails with ErrGestureActive if
// any gesture is already active. Deceleration is interrupted; the caller
// stops its decelerator.
func (g *GestureMachine) Begin(kind GestureKind) error {
	switch g.state {
	case GestureIdle, GestureDecelerating:
		g.set(kind.activeState())
		return nil
	}
	return fmt.Errorf("begin %v while %v: %w", kind.activeState(), g.state, ErrGestureActive)
}

// End leaves the active state for kind, entering deceleration when
// decelerate is true. Ending a gesture that is not active is a no-op.
func (g *GestureMachine) End(kind GestureKind, decelerate bool) {
	if !g.Is(kind) {
		return
	}
	if decelerate {
		g.set(GestureDecelerating)
	} else {
		g.set(GestureIdle)
	}
}

// Cancel abandons the active gesture without deceleration.
func (g *GestureMachine) Cancel(kind GestureKind) {
	if g.Is(kind) {
		g.set(GestureIdle)
	}
}

// DecelerationDone returns to idle once deceleration has finished.
func (g *GestureMachine) DecelerationDone() {
	if g.state == GestureDecelerating {
		g.set(GestureIdle)
	}
}

func (g *GestureMachine) set(s GestureState) {
	from := g.state
	g.state = s
	if from != s && g.OnTransition != nil {
		g.OnTransition(from, s)
	}
}
