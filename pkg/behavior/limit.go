package behavior

// Epsilon is the squared distance under which a boid counts as already at its target.
const Epsilon float32 = 0.001

// NoEase disables arrival easing in SteerTowards.
const NoEase float32 = -1

// Limit is a maximum magnitude together with its square, used for cheap comparisons.
// The only way to build one is NewLimit, so the two values always agree.
type Limit struct {
	value   float32
	squared float32
}

// NewLimit returns the limit for value.
func NewLimit(value float32) Limit {
	return Limit{value: value, squared: value * value}
}

func (l Limit) Value() float32   { return l.value }
func (l Limit) Squared() float32 { return l.squared }
