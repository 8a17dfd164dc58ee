package simulation

import (
	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// Individual is the actor owning one boid. It only moves when the world ticks it.
type Individual struct {
	ID    string
	State *Entity
	plan  *Plan
}

var _ actor.Actor = (*Individual)(nil)

func NewIndividual(state *Entity, plan *Plan) *Individual {
	return &Individual{
		State: state,
		plan:  plan,
	}
}

// ============================================================================
// Actor Lifecycle Hooks
// ============================================================================

func (i *Individual) PreStart(ctx *actor.Context) error {
	i.ID = ctx.ActorName()
	i.State.ID = i.ID
	i.Log(ctx.ActorSystem(), "Born at %s heading %s", i.State.Boid.Position, i.State.Boid.Velocity)
	return nil
}

func (i *Individual) PostStop(ctx *actor.Context) error {
	i.Log(ctx.ActorSystem(), "Death after tick %d", i.State.Sequence)
	return nil
}

// ============================================================================
// Message Routing
// ============================================================================

func (i *Individual) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Debugf("%s started", ctx.Self().Name())

	case *pb.Tick:
		i.State.Step(i.plan, msg)
		i.reportState(ctx)

	default:
		ctx.Unhandled()
	}
}

func (i *Individual) reportState(ctx *actor.ReceiveContext) {
	i.Log(ctx.ActorSystem(), "tick %d pos %s vel %s", i.State.Sequence, i.State.Boid.Position, i.State.Boid.Velocity)
	// Reply to sender (should be World)
	if ctx.Sender() != nil && ctx.Sender() != ctx.ActorSystem().NoSender() {
		ctx.Tell(ctx.Sender(), i.State.ToProto())
	}
}

// ============================================================================
// Utilities
// ============================================================================

func (i *Individual) Log(sys actor.ActorSystem, format string, args ...interface{}) {
	sys.Logger().Debugf("[%s] "+format, append([]interface{}{i.ID}, args...)...)
}
