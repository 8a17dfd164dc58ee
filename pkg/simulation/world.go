package simulation

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/chewxy/math32"
	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor drives the flock. It owns the authoritative copy of every boid state,
// fans ticks out to the individuals and publishes snapshots.
type WorldActor struct {
	states map[string]*pb.BoidState
	pids   []*actor.PID // Keep track of children
	// Communication with the runner
	snapshotCh chan<- *pb.Snapshot
	cfg        *Config
	plan       *Plan
	// last tick seen, stamped on snapshots
	tick   int64
	target geometry.Vector3
	threat geometry.Vector3
	// replies received for tick
	replies int
	// --- Benchmark Stats ---
	msgSentCount int
	msgRecvCount int
	lastLogTime  time.Time
}

// NewWorldActor creates the world logic unit
func NewWorldActor(snapshotCh chan<- *pb.Snapshot, cfg *Config) *WorldActor {
	return &WorldActor{
		states:      make(map[string]*pb.BoidState),
		snapshotCh:  snapshotCh,
		cfg:         cfg,
		plan:        NewPlan(cfg),
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %.0fx%.0fx%.0f is getting ready for %d boids",
		w.cfg.WorldWidth, w.cfg.WorldHeight, w.cfg.WorldDepth, w.cfg.NumBoids)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World Started. Spawning flock...")
		if err := w.spawnFlock(ctx); err != nil {
			ctx.Logger().Errorf("World could not spawn the flock: %v", err)
		}

	// 1. Replies from Individuals
	case *pb.BoidState:
		w.msgRecvCount++
		if w.recordReply(msg) {
			w.pushSnapshot()
		}

	// 2. The Main Simulation Step (Driven by the Runner)
	case *pb.Tick:
		w.logBenchmarks(ctx)
		w.broadcastTick(ctx, msg.GetSequence())
		// nobody to wait for
		if len(w.pids) == 0 {
			w.pushSnapshot()
		}

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		total := w.msgSentCount + w.msgRecvCount
		ctx.Logger().Infof("📊 MSG RATE: %d/sec (Sent: %d, Recv: %d) | Boids: %d",
			total, w.msgSentCount, w.msgRecvCount, len(w.states))
		w.msgSentCount = 0
		w.msgRecvCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// runner busy, skip frame
	}
}

// recordReply stores a boid state and reports whether every boid has now
// answered the current tick. Late replies from an older tick are stored but
// not counted, so a tick overtaken by the next one is never published.
func (w *WorldActor) recordReply(state *pb.BoidState) bool {
	w.states[state.GetId()] = state
	if state.GetSequence() != w.tick {
		return false
	}
	w.replies++
	return w.replies == len(w.pids)
}

// broadcastTick moves the target and threat along their orbits, then tells every boid.
// The snapshot for this tick goes out once all of them replied.
func (w *WorldActor) broadcastTick(ctx *actor.ReceiveContext, sequence int64) {
	w.tick = sequence
	w.replies = 0
	w.target = TargetAt(w.cfg, sequence)
	w.threat = ThreatAt(w.cfg, sequence)

	tick := &pb.Tick{
		Sequence: sequence,
		Target:   Vector3ToProto(w.target),
		Threat:   Vector3ToProto(w.threat),
	}
	for _, pid := range w.pids {
		w.msgSentCount++
		ctx.Tell(pid, tick)
	}
}

func (w *WorldActor) spawnFlock(ctx *actor.ReceiveContext) error {
	for i := 0; i < w.cfg.NumBoids; i++ {
		name := fmt.Sprintf("Boid-%03d", i)
		rng := rand.New(rand.NewPCG(w.cfg.Seed, uint64(i)))

		entity, err := NewEntity(name, RandomPosition(w.cfg, rng), w.cfg, rng)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}

		pid := ctx.Spawn(name, NewIndividual(entity, w.plan))
		w.pids = append(w.pids, pid)

		// We must insert the state into the map NOW, so the very first
		// snapshot already shows the whole flock.
		w.states[name] = entity.ToProto()
	}
	return nil
}

func (w *WorldActor) buildSnapshot() *pb.Snapshot {
	snapshot := &pb.Snapshot{
		Tick:   w.tick,
		Target: Vector3ToProto(w.target),
		Threat: Vector3ToProto(w.threat),
		Boids:  make([]*pb.BoidState, 0, len(w.states)),
	}
	for _, state := range w.states {
		snapshot.Boids = append(snapshot.Boids, state)
	}
	// map order is random, keep recordings diffable
	sort.Slice(snapshot.Boids, func(i, j int) bool {
		return snapshot.Boids[i].GetId() < snapshot.Boids[j].GetId()
	})
	return snapshot
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}

// ============================================================================
// Orbits
// ============================================================================

// TargetAt is where the seek/arrive target sits at the given tick:
// a horizontal circle around the world centre.
func TargetAt(cfg *Config, tick int64) geometry.Vector3 {
	return orbit(cfg.Center(), cfg.TargetOrbitRadius, cfg.TargetOrbitSpeed*float32(tick))
}

// ThreatAt is where the flee threat sits at the given tick.
// It starts on the opposite side of the centre from the target.
func ThreatAt(cfg *Config, tick int64) geometry.Vector3 {
	return orbit(cfg.Center(), cfg.ThreatOrbitRadius, math32.Pi+cfg.ThreatOrbitSpeed*float32(tick))
}

func orbit(center geometry.Vector3, radius, angle float32) geometry.Vector3 {
	return center.Add(geometry.Vector3{
		X: radius * math32.Cos(angle),
		Y: radius * math32.Sin(angle),
	})
}

// RandomPosition picks a uniformly random point inside the world box.
func RandomPosition(cfg *Config, rng geometry.Rand) geometry.Vector3 {
	return geometry.Vector3{
		X: geometry.RandomRange(rng, 0, cfg.WorldWidth),
		Y: geometry.RandomRange(rng, 0, cfg.WorldHeight),
		Z: geometry.RandomRange(rng, 0, cfg.WorldDepth),
	}
}
