package behavior

import (
	"github.com/chewxy/math32"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
)

// Boid represents a single autonomous steering agent.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://www.red3d.com/cwr/steer/
//
// A driver calls any number of steering behaviors (each one adds a force to
// Acceleration) and then Update exactly once per tick.
// A Boid is not safe for concurrent use: one goroutine owns it for the whole tick.
//
// Configuration is not validated. Negative or zero maxima are the caller's business.
type Boid struct {
	Position         geometry.Vector3
	PreviousPosition geometry.Vector3 // Position at the start of the last Update, for trails
	Velocity         geometry.Vector3
	Acceleration     geometry.Vector3 // Forces accumulated during the current tick

	// Radius is kept for collaborators (collision, rendering); nothing here reads it.
	Radius float32

	// DoRotation enables the Rotate hook at the end of Update.
	// There is no orientation model yet, so without a hook it does nothing.
	DoRotation bool
	Rotate     func(b *Boid)

	WanderSettings WanderSettings

	maxSpeed    Limit
	maxForce    Limit
	wanderTheta float32 // running heading offset, never reset
	rng         geometry.Rand
}

// New creates a boid with a random unit velocity and zero maxima.
// SetMaxSpeed and SetMaxSteeringForce must be called before it can move.
func New(rng geometry.Rand) *Boid {
	return &Boid{
		Velocity: geometry.RandomUnitVector3(rng),
		rng:      rng,
	}
}

// NewWithLimits creates a boid with a random unit velocity and the given maxima.
func NewWithLimits(maxSpeed, maxForce float32, rng geometry.Rand) *Boid {
	b := New(rng)
	b.SetMaxSpeed(maxSpeed)
	b.SetMaxSteeringForce(maxForce)
	return b
}

// SetMaxSpeed sets the speed Update clamps the velocity to.
func (b *Boid) SetMaxSpeed(speed float32) { b.maxSpeed = NewLimit(speed) }

// SetMaxSteeringForce sets the magnitude every steering force is clamped to.
func (b *Boid) SetMaxSteeringForce(force float32) { b.maxForce = NewLimit(force) }

func (b *Boid) MaxSpeed() float32        { return b.maxSpeed.Value() }
func (b *Boid) MaxSpeedSquared() float32 { return b.maxSpeed.Squared() }
func (b *Boid) MaxForce() float32        { return b.maxForce.Value() }
func (b *Boid) MaxForceSquared() float32 { return b.maxForce.Squared() }

// SetPosition moves the boid without touching PreviousPosition.
func (b *Boid) SetPosition(x, y, z float32) {
	b.Position = geometry.Vector3{X: x, Y: y, Z: z}
}

// ============================================================================
// Tick
// ============================================================================

// Update advances the boid by one tick.
func (b *Boid) Update() {
	b.PreviousPosition = b.Position

	b.Velocity = b.Velocity.Add(b.Acceleration)

	// A velocity exactly at the limit is renormalized as well.
	// SafeNormalize keeps an unconfigured boid (max speed 0, velocity 0) out of NaN.
	if b.Velocity.LenSqr() >= b.maxSpeed.Squared() {
		b.Velocity = b.Velocity.SafeNormalize().Mul(b.maxSpeed.Value())
	}

	b.Position = b.Position.Add(b.Velocity)

	if b.DoRotation && b.Rotate != nil {
		b.Rotate(b)
	}

	b.Acceleration = geometry.Vector3{}
}

// ============================================================================
// Steering
// ============================================================================

// SteerTowards returns the steering force that moves the boid toward target.
// Inside easeDistance (when greater than 1) the desired speed shrinks linearly
// with the remaining distance. Pass NoEase to always pursue at full speed.
// It never modifies the boid.
func (b *Boid) SteerTowards(target geometry.Vector3, easeDistance float32) geometry.Vector3 {
	force := target.Sub(b.Position)

	distanceSquared := force.LenSqr()
	if distanceSquared <= Epsilon {
		// Already there. The tiny remaining delta is returned as is.
		return force
	}

	if easeDistance > 1 && distanceSquared < easeDistance*easeDistance {
		distance := math32.Sqrt(distanceSquared)
		force = force.Mul(b.maxSpeed.Value() * (distance / easeDistance))
	} else {
		force = force.Mul(b.maxSpeed.Value())
	}

	// desired velocity minus current velocity
	force = force.Sub(b.Velocity)

	if force.LenSqr() > b.maxForce.Squared() {
		force = force.Normalize().Mul(b.maxForce.Value())
	}
	return force
}

// Seek steers toward target at full speed. It returns the force added to Acceleration.
func (b *Boid) Seek(target geometry.Vector3, multiplier float32) geometry.Vector3 {
	return b.accumulate(b.SteerTowards(target, NoEase).Mul(multiplier))
}

// SeekWithinRange seeks target unless the boid is already closer than minRange.
func (b *Boid) SeekWithinRange(target geometry.Vector3, minRange, multiplier float32) geometry.Vector3 {
	if b.Position.DistanceSquaredTo(target) < minRange*minRange {
		return geometry.Vector3{}
	}
	return b.Seek(target, multiplier)
}

// ArriveWithEaseDistance seeks target, slowing down inside easeDistance.
func (b *Boid) ArriveWithEaseDistance(target geometry.Vector3, easeDistance, multiplier float32) geometry.Vector3 {
	return b.accumulate(b.SteerTowards(target, easeDistance).Mul(multiplier))
}

// FleeIfWithinDistance steers away from target when it is within minRange.
// Flee is an inverted seek, eased over minRange.
func (b *Boid) FleeIfWithinDistance(target geometry.Vector3, minRange, multiplier float32) geometry.Vector3 {
	if b.Position.DistanceSquaredTo(target) > minRange*minRange {
		return geometry.Vector3{}
	}
	return b.accumulate(b.SteerTowards(target, minRange).Mul(multiplier).Mul(-1))
}

// ApplyBrakingForce scales the velocity by (1 - brakeFactor) right away.
// 0 leaves it alone, 1 stops the boid. It is not an accumulated force.
func (b *Boid) ApplyBrakingForce(brakeFactor float32) {
	b.Velocity = b.Velocity.Mul(1 - brakeFactor)
}

func (b *Boid) accumulate(force geometry.Vector3) geometry.Vector3 {
	b.Acceleration = b.Acceleration.Add(force)
	return force
}
