package simulation

import (
	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
)

// Entity is a named boid, the unit an Individual actor owns.
type Entity struct {
	ID   string
	Boid *behavior.Boid

	// Steering holds the sum of forces applied during the last tick.
	// Boid.Update resets the acceleration, so it is copied here first.
	Steering geometry.Vector3
	Sequence int64
}

// NewEntity builds a boid from the config, placed at start.
func NewEntity(id string, start geometry.Vector3, cfg *Config, rng geometry.Rand) (*Entity, error) {
	ws, err := cfg.WanderSettings()
	if err != nil {
		return nil, err
	}
	b := behavior.NewWithLimits(cfg.MaxSpeed, cfg.MaxForce, rng)
	b.Position = start
	b.PreviousPosition = start
	b.Radius = cfg.Radius
	b.WanderSettings = ws
	return &Entity{ID: id, Boid: b}, nil
}

// Step runs the plan against the boid, then integrates it.
func (e *Entity) Step(plan *Plan, tick *pb.Tick) {
	plan.Apply(e.Boid, Vector3FromProto(tick.GetTarget()), Vector3FromProto(tick.GetThreat()))
	e.Steering = e.Boid.Acceleration
	e.Boid.Update()
	e.Sequence = tick.GetSequence()
}

// ToProto converts the Entity into the Protobuf "Envelope"
func (e *Entity) ToProto() *pb.BoidState {
	return &pb.BoidState{
		Id:               e.ID,
		Position:         Vector3ToProto(e.Boid.Position),
		PreviousPosition: Vector3ToProto(e.Boid.PreviousPosition),
		Velocity:         Vector3ToProto(e.Boid.Velocity),
		Steering:         Vector3ToProto(e.Steering),
		Sequence:         e.Sequence,
	}
}

func Vector3ToProto(v geometry.Vector3) *pb.Vec3 {
	return &pb.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector3FromProto converts a wire vector; nil reads as the zero vector.
func Vector3FromProto(p *pb.Vec3) geometry.Vector3 {
	return geometry.Vector3{X: p.GetX(), Y: p.GetY(), Z: p.GetZ()}
}
