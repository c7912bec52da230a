package scene

import (
	"fmt"

	"github.com/achilleasa/lumen/types"
)

// The camera type controls the scene camera. Origin, Forward, Up, ViewPlaneDist
// and ViewWidth are the primary camera parameters; the remaining fields are
// derived from them by Update and must not be modified directly.
type Camera struct {
	Origin  types.Vec3
	Forward types.Vec3
	Up      types.Vec3

	// Distance from the origin to the view plane and the view plane width
	// in world units. The view plane height is ViewWidth / Ratio.
	ViewPlaneDist float32
	ViewWidth     float32

	// Derived values.
	FirstPoint types.Vec3
	DirU       types.Vec3
	DirV       types.Vec3
	Ratio      float32
}

// Create a camera at (0, 0, -2) looking down +Z.
func NewCamera() *Camera {
	return &Camera{
		Origin:        types.Vec3{0, 0, -2},
		Forward:       types.Vec3{0, 0, 1},
		Up:            types.Vec3{0, 1, 0},
		ViewPlaneDist: 2,
		ViewWidth:     2,
		Ratio:         1,
	}
}

// Recompute the view basis and the view plane anchor for a frame with the
// given dimensions. This must be invoked before generating any rays for a frame.
func (c *Camera) Update(frameW, frameH uint32) {
	c.Ratio = float32(frameW) / float32(frameH)
	c.DirV = c.Up.Neg()
	c.DirU = c.Forward.Cross(c.DirV)
	c.FirstPoint = c.Origin.Add(c.Forward.Mul(c.ViewPlaneDist))
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"origin (%3.3f, %3.3f, %3.3f) forward (%3.3f, %3.3f, %3.3f) up (%3.3f, %3.3f, %3.3f) view plane %3.3f width %3.3f",
		c.Origin[0], c.Origin[1], c.Origin[2],
		c.Forward[0], c.Forward[1], c.Forward[2],
		c.Up[0], c.Up[1], c.Up[2],
		c.ViewPlaneDist, c.ViewWidth,
	)
}
