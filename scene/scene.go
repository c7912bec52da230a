package scene

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/lumen/types"
	"github.com/olekukonko/tablewriter"
)

// A scene is an ordered list of shapes lit by a single point light. It is
// read-only while a frame is being rendered.
type Scene struct {
	Camera *Camera
	Light  PointLight

	// Scan order only matters for breaking ties between hits at exactly
	// the same distance; the earlier shape wins.
	Shapes []Shape
}

// Create an empty scene with a default camera and light.
func NewScene() *Scene {
	return &Scene{
		Camera: NewCamera(),
		Light:  PointLight{Position: types.Vec3{-3, -3, -3}},
		Shapes: make([]Shape, 0),
	}
}

// Add a shape to the scene.
func (s *Scene) AddShape(shape Shape) error {
	switch sh := shape.(type) {
	case *Sphere:
		if sh == nil {
			return ErrNilShape
		}
		if !(sh.Radius > 0) {
			return fmt.Errorf("%w; got %f", ErrInvalidRadius, sh.Radius)
		}
	default:
		return ErrNilShape
	}

	s.Shapes = append(s.Shapes, shape)
	return nil
}

// Create the built-in five sphere scene.
func NewDefault() *Scene {
	sc := NewScene()
	for _, sphere := range []*Sphere{
		NewSphere(types.Vec3{-.5, -.5, 2}, 0.5, 0xffff0000),
		NewSphere(types.Vec3{1.5, 1, 3}, 0.2, 0xff00ff00),
		NewSphere(types.Vec3{-1.5, 2, 5}, 0.1, 0xff0000ff),
		NewSphere(types.Vec3{-.8, -2, 6}, 0.2, 0xff00ffff),
		NewSphere(types.Vec3{.2, 2, 10}, 0.8, 0xffffff00),
	} {
		sc.Shapes = append(sc.Shapes, sphere)
	}
	return sc
}

// Return a printable summary of the scene contents.
func (s *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Type", "Center", "Radius", "Color"})
	for idx, shape := range s.Shapes {
		switch sh := shape.(type) {
		case *Sphere:
			table.Append([]string{
				fmt.Sprintf("%d", idx),
				"sphere",
				fmt.Sprintf("(%3.2f, %3.2f, %3.2f)", sh.Center[0], sh.Center[1], sh.Center[2]),
				fmt.Sprintf("%3.2f", sh.Radius),
				fmt.Sprintf("0x%08x", uint32(sh.Color)),
			})
		}
	}
	lp := s.Light.Position
	table.SetFooter([]string{"", "light", fmt.Sprintf("(%3.2f, %3.2f, %3.2f)", lp[0], lp[1], lp[2]), "", ""})
	table.Render()

	if s.Camera != nil {
		buf.WriteString("camera: ")
		buf.WriteString(s.Camera.String())
		buf.WriteString("\n")
	}
	return buf.String()
}
