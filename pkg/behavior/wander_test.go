package behavior

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/geometry"
)

func TestParseWanderOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    WanderOffset
		wantErr bool
	}{
		{"", WanderOffsetTangent, false},
		{"tangent", WanderOffsetTangent, false},
		{"sine", WanderOffsetSine, false},
		{"cosine", WanderOffsetTangent, true},
	}
	for _, tt := range tests {
		got, err := ParseWanderOffset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWanderOffset(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseWanderOffset(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
	if WanderOffsetSine.String() != "sine" || WanderOffsetTangent.String() != "tangent" {
		t.Error("String() does not round-trip the config names")
	}
}

func TestWanderOffset(t *testing.T) {
	theta := float32(0.5)
	tan := wanderOffset(theta, WanderOffsetTangent)
	sin := wanderOffset(theta, WanderOffsetSine)

	if !near(tan.Z, math32.Tan(theta)) {
		t.Errorf("tangent offset z = %v; want tan(%v)", tan.Z, theta)
	}
	if !near(sin.Z, math32.Sin(theta)) {
		t.Errorf("sine offset z = %v; want sin(%v)", sin.Z, theta)
	}
	if !near(tan.X, math32.Cos(theta)) || !near(tan.Y, math32.Sin(theta)) {
		t.Errorf("offset x,y = (%v, %v); want (cos, sin)", tan.X, tan.Y)
	}
}

func TestWander_ThetaStepIsBounded(t *testing.T) {
	b := NewWithLimits(3, 0.5, rand.New(rand.NewPCG(5, 8)))
	b.SetWanderRadius(2)
	b.SetWanderLookAheadDistance(10)
	b.SetWanderMaxTurningSpeed(0.2)

	for i := 0; i < 1000; i++ {
		before := b.WanderTheta()
		b.Wander(1)
		step := math32.Abs(b.WanderTheta() - before)
		if step > 0.2+tolerance {
			t.Fatalf("call %d: theta moved by %v; want at most 0.2", i, step)
		}
		b.Update()
	}
}

func TestWander_ScriptedTarget(t *testing.T) {
	// A sample of 0.5 maps to a turn of exactly 0, so theta stays at 0 and the
	// offset is (1, 0, 0) × radius.
	b := NewWithLimits(1, 100, fixedRand(0.5))
	b.Velocity = geometry.Vector3{X: 2}
	b.SetWanderRadius(3)
	b.SetWanderLookAheadDistance(10)
	b.SetWanderMaxTurningSpeed(1)

	// target = position + normalize(v)*10 + (3, 0, 0) = (13, 0, 0)
	want := b.SteerTowards(geometry.Vector3{X: 13}, NoEase).Mul(2)
	got := b.Wander(2)

	if b.WanderTheta() != 0 {
		t.Errorf("theta = %v; want 0", b.WanderTheta())
	}
	if !nearVec(got, want) || !nearVec(b.Acceleration, want) {
		t.Errorf("Wander = %v, acceleration %v; want %v", got, b.Acceleration, want)
	}
}

func TestWander_StandingStillHasNoForwardBias(t *testing.T) {
	b := NewWithLimits(1, 100, fixedRand(0.5))
	b.Velocity = geometry.Vector3{}
	b.SetWanderRadius(2)
	b.SetWanderLookAheadDistance(50)

	got := b.Wander(1)
	// look ahead collapses to the position, target is just the offset (2, 0, 0)
	want := geometry.Vector3{X: 2}
	if math32.IsNaN(got.X) || !nearVec(got, want) {
		t.Errorf("Wander from rest = %v; want %v", got, want)
	}
}

func TestWander_ZeroValueBoid(t *testing.T) {
	b := &Boid{}
	b.SetWanderMaxTurningSpeed(0.5)

	got := b.Wander(1)

	if b.WanderTheta() != 0 {
		t.Errorf("theta = %v; want 0 without a random source", b.WanderTheta())
	}
	if math32.IsNaN(got.X) || got != (geometry.Vector3{}) {
		t.Errorf("Wander on a zero boid = %v; want zero", got)
	}
}
