package simulation

import (
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
)

// Plan is the per-tick steering recipe every boid follows.
// Weights of zero switch a behavior off.
type Plan struct {
	WanderWeight float32

	SeekWeight   float32
	SeekMinRange float32

	ArriveWeight       float32
	ArriveEaseDistance float32

	FleeWeight float32
	FleeRadius float32

	BrakeFactor float32

	// Containment seeks Center whenever the boid is outside the box [0, Bounds].
	ContainWeight float32
	Center        geometry.Vector3
	Bounds        geometry.Vector3
}

func NewPlan(cfg *Config) *Plan {
	return &Plan{
		WanderWeight:       cfg.WanderWeight,
		SeekWeight:         cfg.SeekWeight,
		SeekMinRange:       cfg.SeekMinRange,
		ArriveWeight:       cfg.ArriveWeight,
		ArriveEaseDistance: cfg.ArriveEaseDistance,
		FleeWeight:         cfg.FleeWeight,
		FleeRadius:         cfg.FleeRadius,
		BrakeFactor:        cfg.BrakeFactor,
		ContainWeight:      cfg.ContainWeight,
		Center:             cfg.Center(),
		Bounds:             cfg.Bounds(),
	}
}

// Apply accumulates this tick's forces on b. It does not call Update.
// Braking goes first since it changes the velocity the other behaviors steer against.
func (p *Plan) Apply(b *behavior.Boid, target, threat geometry.Vector3) {
	if p.BrakeFactor > 0 {
		b.ApplyBrakingForce(p.BrakeFactor)
	}
	if p.WanderWeight != 0 {
		b.Wander(p.WanderWeight)
	}
	if p.SeekWeight != 0 {
		b.SeekWithinRange(target, p.SeekMinRange, p.SeekWeight)
	}
	if p.ArriveWeight != 0 {
		b.ArriveWithEaseDistance(target, p.ArriveEaseDistance, p.ArriveWeight)
	}
	if p.FleeWeight != 0 {
		b.FleeIfWithinDistance(threat, p.FleeRadius, p.FleeWeight)
	}
	if p.ContainWeight != 0 && p.outside(b.Position) {
		b.Seek(p.Center, p.ContainWeight)
	}
}

func (p *Plan) outside(pos geometry.Vector3) bool {
	return pos.X < 0 || pos.X > p.Bounds.X ||
		pos.Y < 0 || pos.Y > p.Bounds.Y ||
		pos.Z < 0 || pos.Z > p.Bounds.Z
}
