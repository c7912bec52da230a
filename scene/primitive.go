package scene

import "github.com/achilleasa/lumen/types"

// Shape is the closed set of primitives a scene can hold. Only types in this
// package can implement it; callers dispatch on the concrete type with a
// type switch.
type Shape interface {
	isShape()
}

// A sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float32
	Color  types.Color
}

func (*Sphere) isShape() {}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32, color types.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// A point light. It has no intensity or falloff; it only contributes a
// Lambertian term during shading.
type PointLight struct {
	Position types.Vec3
}
