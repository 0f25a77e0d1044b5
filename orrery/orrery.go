package orrery

import (
	"fmt"
	"math"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

// DefaultTimestep is the simulated time per frame tick, matching a nominal
// 60 Hz refresh.
const DefaultTimestep = 0.016

// RingSpeed is the ring rotation in degrees per simulated time unit.
const RingSpeed = 20.0

// State is the mutable animation state of one planet. OrbitAngle is in
// radians within [0, 2π), SpinAngle in degrees within [0, 360).
type State struct {
	OrbitAngle float64
	SpinAngle  float64
}

func (s State) String() string {
	return fmt.Sprintf(`orbit:%.3f spin:%.2f`, s.OrbitAngle, s.SpinAngle)
}

// Orrery animates a fixed table of planets. It is not safe for concurrent
// use; the renderer and input callbacks share one thread.
type Orrery struct {
	bodies []Body
	states []State

	ticks   uint64
	elapsed float64
}

// New returns an orrery for bodies with all angles at zero.
func New(bodies []Body) (*Orrery, error) {
	if err := Validate(bodies); err != nil {
		return nil, err
	}

	b := make([]Body, len(bodies))
	copy(b, bodies)

	return &Orrery{
		bodies: b,
		states: make([]State, len(b)),
	}, nil
}

func (o *Orrery) Len() int {
	return len(o.bodies)
}

// Body returns the static parameters of planet i.
func (o *Orrery) Body(i int) (Body, bool) {
	if i < 0 || i >= len(o.bodies) {
		return Body{}, false
	}
	return o.bodies[i], true
}

// State returns the current animation state of planet i.
func (o *Orrery) State(i int) (State, bool) {
	if i < 0 || i >= len(o.states) {
		return State{}, false
	}
	return o.states[i], true
}

// Ticks is the number of Advance calls so far.
func (o *Orrery) Ticks() uint64 {
	return o.ticks
}

// Elapsed is the simulated time accumulated over all ticks.
func (o *Orrery) Elapsed() float64 {
	return o.elapsed
}

// Advance moves every planet forward by dt simulated time units.
func (o *Orrery) Advance(dt float64) {
	for i := range o.states {
		o.advanceBody(i, dt)
	}
	o.ticks++
	o.elapsed += dt
}

func (o *Orrery) advanceBody(i int, dt float64) {
	b := &o.bodies[i]
	s := &o.states[i]

	s.OrbitAngle = wrap(s.OrbitAngle+(2*math.Pi/b.OrbitalPeriod)*dt, 2*math.Pi)
	s.SpinAngle = wrap(s.SpinAngle+(360/b.RotationPeriod)*dt, 360)
}

// wrap brings v into [0, m).
func wrap(v, m float64) float64 {
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	if v >= m {
		v = 0
	}
	return v
}

// OrbitPosition is the position on a circular orbit of radius r at angle a.
// Angle zero lies on the positive Z axis and the orbit runs in the XZ plane.
func OrbitPosition(r, a float64) vector.V3 {
	return vector.V3{X: -r * math.Sin(a), Z: r * math.Cos(a)}
}

// Position returns the world position of planet i.
func (o *Orrery) Position(i int) (vector.V3, bool) {
	if i < 0 || i >= len(o.bodies) {
		return vector.V3{}, false
	}
	return OrbitPosition(o.bodies[i].OrbitalRadius, o.states[i].OrbitAngle), true
}

// Tangent returns the unit direction of travel of planet i.
func (o *Orrery) Tangent(i int) (vector.V3, bool) {
	if i < 0 || i >= len(o.bodies) {
		return vector.V3{}, false
	}
	a := o.states[i].OrbitAngle
	return vector.V3{X: -math.Cos(a), Z: -math.Sin(a)}, true
}

// RingAngle is the current rotation of ring geometry in degrees.
func (o *Orrery) RingAngle() float64 {
	return wrap(o.elapsed*RingSpeed, 360)
}
