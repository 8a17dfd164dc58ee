package simulation

import (
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
)

func TestSummarize(t *testing.T) {
	snapshot := &pb.Snapshot{
		Tick:   5,
		Target: &pb.Vec3{},
		Boids: []*pb.BoidState{
			{Id: "a", Position: &pb.Vec3{X: 3, Y: 4}, Velocity: &pb.Vec3{X: 3, Y: 4}},
			{Id: "b", Position: &pb.Vec3{X: -3, Y: -4}, Velocity: &pb.Vec3{X: 1}},
		},
	}

	s := Summarize(snapshot)

	if s.Tick != 5 || s.Boids != 2 {
		t.Errorf("tick/boids = %d/%d; want 5/2", s.Tick, s.Boids)
	}
	if !near(s.MeanSpeed, 3) || !near(s.MaxSpeed, 5) {
		t.Errorf("speed mean %v max %v; want 3 and 5", s.MeanSpeed, s.MaxSpeed)
	}
	if !nearVec(s.Centroid, geometry.Vector3{}) {
		t.Errorf("Centroid = %s; want origin", s.Centroid)
	}
	if !near(s.MeanTargetDistance, 5) {
		t.Errorf("MeanTargetDistance = %v; want 5", s.MeanTargetDistance)
	}
	if !strings.Contains(s.String(), "tick 5: 2 boids") {
		t.Errorf("String() = %q", s.String())
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(&pb.Snapshot{Tick: 1})
	if s.Boids != 0 || s.MeanSpeed != 0 || s.Centroid != (geometry.Vector3{}) {
		t.Errorf("Summarize(empty) = %+v; want zero values", s)
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}
