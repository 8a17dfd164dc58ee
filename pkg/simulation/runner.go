package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/tochemey/goakt/v3/actor"
)

// ErrStopRun can be returned by a snapshot callback to end Run early without an error.
var ErrStopRun = errors.New("stop run")

// finalSnapshotTimeout bounds how long Run waits for the last tick to be published.
const finalSnapshotTimeout = 2 * time.Second

// Runner is the external clock of the simulation. It owns the world actor
// and paces ticks at Config.TicksPerSecond.
type Runner struct {
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.Snapshot
	cfg        *Config
	// sequence of the next tick to send
	next int64
}

// NewRunner spawns the world inside an already started actor system.
func NewRunner(ctx context.Context, cfg *Config, system actor.ActorSystem) (*Runner, error) {
	if _, err := cfg.WanderSettings(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.TicksPerSecond <= 0 {
		return nil, fmt.Errorf("invalid config: ticksPerSecond must be positive, got %d", cfg.TicksPerSecond)
	}
	buffer := cfg.SnapshotBuffer
	if buffer < 1 {
		buffer = 1
	}

	// 1. Create Channels for communication
	snapshotCh := make(chan *pb.Snapshot, buffer)

	// 2. Spawn World Actor, it pushes snapshots to us through the channel
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	return &Runner{
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		cfg:        cfg,
		next:       1,
	}, nil
}

// Run ticks the world until ticks have been sent (ticks <= 0 means forever) or
// ctx is done, handing every snapshot it receives to onSnapshot.
// A snapshot is published once every boid has integrated its tick. Calling Run
// again continues the sequence where the previous call stopped.
func (r *Runner) Run(ctx context.Context, ticks int64, onSnapshot func(*pb.Snapshot) error) error {
	interval := time.Second / time.Duration(r.cfg.TicksPerSecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for sent := int64(0); ticks <= 0 || sent < ticks; sent++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		seq := r.next
		if err := actor.Tell(ctx, r.worldPID, &pb.Tick{Sequence: seq}); err != nil {
			return fmt.Errorf("failed to send tick %d: %w", seq, err)
		}
		r.next++
		if err := r.drain(onSnapshot); err != nil {
			return stopOrErr(err)
		}
	}

	return stopOrErr(r.awaitTick(ctx, r.next-1, onSnapshot))
}

// awaitTick hands over snapshots until the one for last shows up.
// It gives up quietly after finalSnapshotTimeout, the frame may have been dropped.
func (r *Runner) awaitTick(ctx context.Context, last int64, onSnapshot func(*pb.Snapshot) error) error {
	timeout := time.NewTimer(finalSnapshotTimeout)
	defer timeout.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout.C:
			return nil
		case snapshot := <-r.snapshotCh:
			if onSnapshot != nil {
				if err := onSnapshot(snapshot); err != nil {
					return err
				}
			}
			if snapshot.GetTick() >= last {
				return nil
			}
		}
	}
}

// drain hands over whatever snapshots are waiting without blocking.
func (r *Runner) drain(onSnapshot func(*pb.Snapshot) error) error {
	for {
		select {
		case snapshot := <-r.snapshotCh:
			if onSnapshot == nil {
				continue
			}
			if err := onSnapshot(snapshot); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func stopOrErr(err error) error {
	if errors.Is(err, ErrStopRun) {
		return nil
	}
	return err
}
