package cpu

import (
	"math"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/types"
)

// Discriminant values in (0, Epsilon] are treated as tangential hits.
const Epsilon float32 = 0.001

// Intersect a ray with a sphere and return the distance to the near root.
// The ray direction must be unit length as the quadratic's leading
// coefficient is fixed to 1. Hits behind the ray origin are reported too.
func Intersect(orig, dir types.Vec3, sphere *scene.Sphere) (float32, bool) {
	oc := orig.Sub(sphere.Center)

	b := 2.0 * oc.Dot(dir)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius
	delta := b*b - 4.0*c

	switch {
	case delta > Epsilon:
		return (-b - float32(math.Sqrt(float64(delta)))) / 2.0, true
	case delta > 0:
		return -b / 2.0, true
	}
	return 0, false
}
