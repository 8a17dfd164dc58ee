package geometry

import "github.com/chewxy/math32"

// Rand is the source of randomness used by anything in this module that needs it.
// *rand.Rand from math/rand/v2 satisfies it; tests can pass a scripted source.
type Rand interface {
	// Float32 returns a pseudo-random number in [0.0, 1.0).
	Float32() float32
}

// RandomRange returns a uniform pseudo-random number in [lo, hi).
func RandomRange(r Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}

// RandomUnitVector3 returns a vector uniformly distributed on the unit sphere.
func RandomUnitVector3(r Rand) Vector3 {
	phi := RandomRange(r, 0, 2*math32.Pi)
	z := RandomRange(r, -1, 1)
	rho := math32.Sqrt(1 - z*z)
	return Vector3{
		X: rho * math32.Cos(phi),
		Y: rho * math32.Sin(phi),
		Z: z,
	}
}
