// Package kinematics integrates acceleration into velocity into position for
// a single actor, once per frame.
package kinematics

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// Engine owns an actor's velocity and the acceleration accumulated during the
// current frame. Angles are in degrees, measured from +X towards +Y.
type Engine struct {
	velocity     math.Vec2
	accumulator  math.Vec2
	acceleration float64
	maxSpeed     float64
	deceleration float64
}

// New returns an engine at rest with the given limits.
func New(acceleration, maxSpeed, deceleration float64) *Engine {
	return &Engine{
		acceleration: acceleration,
		maxSpeed:     maxSpeed,
		deceleration: deceleration,
	}
}

func (k *Engine) SetAcceleration(a float64) { k.acceleration = a }
func (k *Engine) SetMaxSpeed(s float64) { k.maxSpeed = s }
func (k *Engine) SetDeceleration(d float64) { k.deceleration = d }

func (k *Engine) Acceleration() float64 { return k.acceleration }
func (k *Engine) MaxSpeed() float64 { return k.maxSpeed }
func (k *Engine) Deceleration() float64 { return k.deceleration }

// Velocity returns the current velocity vector.
func (k *Engine) Velocity() math.Vec2 { return k.velocity }

// Accumulated returns the acceleration gathered since the last ApplyPhysics.
func (k *Engine) Accumulated() math.Vec2 { return k.accumulator }

// AccelerateAtAngle adds an impulse of magnitude Acceleration() in the
// direction of angle.
func (k *Engine) AccelerateAtAngle(angle float64) {
	k.accumulator = k.accumulator.Add(fromAngle(angle, k.acceleration))
}

// AccelerateForward accelerates along rotation, the owner's facing.
func (k *Engine) AccelerateForward(rotation float64) {
	k.AccelerateAtAngle(rotation)
}

// SetSpeed keeps the direction of motion and changes its magnitude. An
// actor at rest starts moving at angle 0. Negative speeds are treated as 0.
func (k *Engine) SetSpeed(speed float64) {
	k.velocity = withLength(k.velocity, gomath.Max(speed, 0))
}

// SetMotionAngle keeps the speed and changes the direction of motion.
func (k *Engine) SetMotionAngle(angle float64) {
	k.velocity = fromAngle(angle, k.velocity.Magnitude())
}

// Speed is the magnitude of the velocity.
func (k *Engine) Speed() float64 {
	return k.velocity.Magnitude()
}

// MotionAngle is the direction of the velocity in [0, 360).
func (k *Engine) MotionAngle() float64 {
	deg := gomath.Atan2(k.velocity.Y, k.velocity.X) * 180 / gomath.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func (k *Engine) IsMoving() bool {
	return k.Speed() > 0
}

// ApplyPhysics advances one frame of dt seconds and moves pos by the
// resulting velocity. Deceleration only applies on frames without
// acceleration. Negative dt is treated as zero.
func (k *Engine) ApplyPhysics(pos *math.Vec2, dt float64) {
	if dt < 0 {
		dt = 0
	}

	k.velocity = k.velocity.Add(k.accumulator.MulScalar(dt))

	speed := k.velocity.Magnitude()
	if k.accumulator.X == 0 && k.accumulator.Y == 0 {
		speed -= k.deceleration * dt
	}
	speed = clamp(speed, 0, k.maxSpeed)

	k.velocity = withLength(k.velocity, speed)

	if pos != nil {
		*pos = pos.Add(k.velocity.MulScalar(dt))
	}

	k.accumulator = math.Vec2{}
}

// Stop zeroes velocity and any pending acceleration.
func (k *Engine) Stop() {
	k.velocity = math.Vec2{}
	k.accumulator = math.Vec2{}
}

func fromAngle(angle, length float64) math.Vec2 {
	rad := angle * gomath.Pi / 180
	return math.Vec2{X: length * gomath.Cos(rad), Y: length * gomath.Sin(rad)}
}

func withLength(v math.Vec2, length float64) math.Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return math.Vec2{X: length}
	}
	return v.MulScalar(length / m)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return gomath.Max(lo, gomath.Min(hi, v))
}
