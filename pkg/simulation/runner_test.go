package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func newTestSystem(t *testing.T) actor.ActorSystem {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("SteeringTest", actor.WithLogger(golog.DiscardLogger))
	if err != nil {
		t.Fatalf("NewActorSystem() error = %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })
	return system
}

func smallConfig() *Config {
	cfg := DefaultConfig()
	cfg.NumBoids = 5
	cfg.TicksPerSecond = 200
	cfg.SnapshotBuffer = 100
	return cfg
}

func TestRunner_Run(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := smallConfig()
	runner, err := NewRunner(ctx, cfg, newTestSystem(t))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	var snapshots []*pb.Snapshot
	err = runner.Run(ctx, 20, func(s *pb.Snapshot) error {
		snapshots = append(snapshots, s)
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(snapshots) == 0 {
		t.Fatal("Run() produced no snapshot")
	}

	last := int64(0)
	for _, s := range snapshots {
		if len(s.GetBoids()) != cfg.NumBoids {
			t.Errorf("snapshot %d has %d boids; want %d", s.GetTick(), len(s.GetBoids()), cfg.NumBoids)
		}
		if s.GetTick() <= last {
			t.Errorf("tick %d after %d; want increasing ticks", s.GetTick(), last)
		}
		last = s.GetTick()
		for _, b := range s.GetBoids() {
			if b.GetSequence() != s.GetTick() {
				t.Errorf("snapshot %d holds %s from tick %d", s.GetTick(), b.GetId(), b.GetSequence())
			}
			if speed := Vector3FromProto(b.GetVelocity()).Len(); speed > cfg.MaxSpeed+tolerance {
				t.Errorf("%s moves at %v, above max speed %v", b.GetId(), speed, cfg.MaxSpeed)
			}
		}
	}
	if last != 20 {
		t.Errorf("last snapshot is for tick %d; want 20", last)
	}
}

func TestRunner_RunContinuesSequence(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runner, err := NewRunner(ctx, smallConfig(), newTestSystem(t))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	ticksOf := func(n int64) []int64 {
		var got []int64
		if err := runner.Run(ctx, n, func(s *pb.Snapshot) error {
			got = append(got, s.GetTick())
			return nil
		}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return got
	}

	first := ticksOf(5)
	if len(first) == 0 || first[len(first)-1] != 5 {
		t.Fatalf("first run ticks = %v; want to end at 5", first)
	}
	second := ticksOf(3)
	if len(second) == 0 || second[0] <= 5 || second[len(second)-1] != 8 {
		t.Errorf("second run ticks = %v; want ticks 6 to 8", second)
	}
}

func TestRunner_StopFromCallback(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runner, err := NewRunner(ctx, smallConfig(), newTestSystem(t))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	calls := 0
	err = runner.Run(ctx, 0, func(s *pb.Snapshot) error {
		calls++
		return ErrStopRun
	})
	if err != nil {
		t.Errorf("Run() error = %v; want nil after ErrStopRun", err)
	}
	if calls != 1 {
		t.Errorf("callback called %d times; want 1", calls)
	}

	boom := errors.New("disk full")
	err = runner.Run(ctx, 0, func(s *pb.Snapshot) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v; want %v", err, boom)
	}
}

func TestRunner_ContextCancel(t *testing.T) {
	runner, err := NewRunner(context.Background(), smallConfig(), newTestSystem(t))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runner.Run(ctx, 0, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v; want context.Canceled", err)
	}
}

func TestNewRunner_RejectsBadConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.WanderOffset = "spiral"
	if _, err := NewRunner(context.Background(), cfg, nil); err == nil {
		t.Error("NewRunner() accepted an unknown wander offset")
	}

	cfg = smallConfig()
	cfg.TicksPerSecond = 0
	if _, err := NewRunner(context.Background(), cfg, nil); err == nil {
		t.Error("NewRunner() accepted zero ticks per second")
	}
}
