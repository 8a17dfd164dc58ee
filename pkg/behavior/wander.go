package behavior

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
)

// WanderOffset selects how the lateral wander offset is built from the heading angle.
type WanderOffset int

const (
	// WanderOffsetTangent uses (cos θ, sin θ, tan θ). The tangent on the third axis
	// is how the behavior was first written and is kept as the default.
	WanderOffsetTangent WanderOffset = iota
	// WanderOffsetSine uses (cos θ, sin θ, sin θ), which stays bounded by the radius.
	WanderOffsetSine
)

// ParseWanderOffset maps a config name ("tangent", "sine") to a WanderOffset.
func ParseWanderOffset(name string) (WanderOffset, error) {
	switch name {
	case "", "tangent":
		return WanderOffsetTangent, nil
	case "sine":
		return WanderOffsetSine, nil
	default:
		return WanderOffsetTangent, fmt.Errorf("unknown wander offset %q", name)
	}
}

func (o WanderOffset) String() string {
	if o == WanderOffsetSine {
		return "sine"
	}
	return "tangent"
}

// WanderSettings controls the Wander behavior.
type WanderSettings struct {
	Radius            float32 // How big a circle the random point is picked from
	LookAheadDistance float32 // How far ahead of the boid that circle sits
	MaxTurningSpeed   float32 // How much the heading may change per tick, in radians
	Offset            WanderOffset
}

func (b *Boid) SetWanderRadius(radius float32) { b.WanderSettings.Radius = radius }

func (b *Boid) SetWanderLookAheadDistance(distance float32) {
	b.WanderSettings.LookAheadDistance = distance
}

func (b *Boid) SetWanderMaxTurningSpeed(speed float32) {
	b.WanderSettings.MaxTurningSpeed = speed
}

// WanderTheta returns the current wander heading offset.
func (b *Boid) WanderTheta() float32 { return b.wanderTheta }

// Wander steers toward a point that drifts randomly around a spot straight ahead.
// The heading offset is a random walk that persists between calls.
// A boid built without a random source (the zero value) keeps its heading offset.
func (b *Boid) Wander(multiplier float32) geometry.Vector3 {
	ws := b.WanderSettings
	if b.rng != nil {
		b.wanderTheta += geometry.RandomRange(b.rng, -ws.MaxTurningSpeed, ws.MaxTurningSpeed)
	}

	// straight line in front of us, zero when standing still
	ahead := b.Velocity.SafeNormalize().Mul(ws.LookAheadDistance).Add(b.Position)

	target := ahead.Add(wanderOffset(b.wanderTheta, ws.Offset).Mul(ws.Radius))
	return b.Seek(target, multiplier)
}

func wanderOffset(theta float32, mode WanderOffset) geometry.Vector3 {
	third := math32.Tan(theta)
	if mode == WanderOffsetSine {
		third = math32.Sin(theta)
	}
	return geometry.Vector3{
		X: math32.Cos(theta),
		Y: math32.Sin(theta),
		Z: third,
	}
}
