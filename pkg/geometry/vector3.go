package geometry

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Epsilon is the tolerance used by Eq.
// Components are float32, so this is much coarser than a float64 epsilon would be.
const (
	Epsilon = 1e-5
)

// ErrDivideByZero is returned by Div when the scalar is zero.
var ErrDivideByZero = errors.New("vector cannot be divided by zero")

// Vector3 represents a single precision 3D vector or point in cartesian space.
// Fields are public because they are plain data: v := Vector3{1, 2, 3}
type Vector3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// NewVector3 creates a new Vector3.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Zero returns the zero vector.
func Zero() Vector3 {
	return Vector3{}
}

// ---------------------------------------------------------------------
// Stringer Interface
// ---------------------------------------------------------------------

// String implements the fmt.Stringer interface.
func (v Vector3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers returning new values, like the rest of the package.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts the other vector from the current vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul scales the vector by a scalar value.
func (v Vector3) Mul(scalar float32) Vector3 {
	return Vector3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Div scales the vector by 1/scalar.
// A zero scalar yields an Inf vector together with ErrDivideByZero.
func (v Vector3) Div(scalar float32) (Vector3, error) {
	if scalar == 0 {
		inf := math32.Inf(1)
		return Vector3{inf, inf, inf}, ErrDivideByZero
	}
	return Vector3{v.X / scalar, v.Y / scalar, v.Z / scalar}, nil
}

// ---------------------------------------------------------------------
// Vector3 Products
// ---------------------------------------------------------------------

// Dot calculates the dot product of two vectors.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product v × other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
// Cheaper than Len() as it avoids the square root. Use for comparisons.
func (v Vector3) LenSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len calculates the magnitude (length) of the vector.
func (v Vector3) Len() float32 {
	return math32.Sqrt(v.LenSqr())
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction: the result is NaN and it is up to the
// caller not to ask for it. Use SafeNormalize when zero is a legal input.
func (v Vector3) Normalize() Vector3 {
	return v.Mul(1 / v.Len())
}

// SafeNormalize is Normalize that returns the zero vector for a zero length input.
func (v Vector3) SafeNormalize() Vector3 {
	l := v.LenSqr()
	if l == 0 {
		return Vector3{}
	}
	return v.Mul(1 / math32.Sqrt(l))
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another vector.
func (v Vector3) DistanceSquaredTo(other Vector3) float32 {
	return v.Sub(other).LenSqr()
}

// Lerp (Linear Interpolate) calculates a point between v and target based on t [0, 1].
func (v Vector3) Lerp(target Vector3, t float32) Vector3 {
	return v.Add(target.Sub(v).Mul(t))
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector3) Eq(other Vector3) bool {
	return math32.Abs(v.X-other.X) <= Epsilon &&
		math32.Abs(v.Y-other.Y) <= Epsilon &&
		math32.Abs(v.Z-other.Z) <= Epsilon
}
