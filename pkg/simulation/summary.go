package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
)

// Summary condenses a snapshot into a few numbers for log lines and reports.
type Summary struct {
	Tick      int64
	Boids     int
	MeanSpeed float32
	MaxSpeed  float32
	Centroid  geometry.Vector3
	// mean distance from the boids to the target
	MeanTargetDistance float32
}

func Summarize(snapshot *pb.Snapshot) Summary {
	s := Summary{Tick: snapshot.GetTick(), Boids: len(snapshot.GetBoids())}
	if s.Boids == 0 {
		return s
	}
	target := Vector3FromProto(snapshot.GetTarget())

	var speedSum, distSum float32
	for _, b := range snapshot.GetBoids() {
		pos := Vector3FromProto(b.GetPosition())
		speed := Vector3FromProto(b.GetVelocity()).Len()
		speedSum += speed
		if speed > s.MaxSpeed {
			s.MaxSpeed = speed
		}
		s.Centroid = s.Centroid.Add(pos)
		distSum += pos.DistanceTo(target)
	}
	n := float32(s.Boids)
	s.MeanSpeed = speedSum / n
	s.Centroid = s.Centroid.Mul(1 / n)
	s.MeanTargetDistance = distSum / n
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("tick %d: %d boids, speed mean %.2f max %.2f, centroid %s, target distance %.1f",
		s.Tick, s.Boids, s.MeanSpeed, s.MaxSpeed, s.Centroid, s.MeanTargetDistance)
}
