package cpu

import (
	"fmt"
	"time"

	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/tracer"
	"github.com/achilleasa/lumen/types"
)

// A CPU tracer that shades pixels by intersecting primary rays against the
// scene shapes. A single instance may trace non-overlapping blocks from
// multiple go-routines; scene, camera and background must not be modified
// while blocks are being traced.
type Tracer struct {
	id string

	scene      *scene.Scene
	background *Background

	frameW      uint32
	frameH      uint32
	invW        float32
	invH        float32
	frameBuffer []types.Color
}

var _ tracer.Tracer = (*Tracer)(nil)

// Create a new cpu tracer.
func NewTracer(id string, sc *scene.Scene, background *Background) *Tracer {
	if background == nil {
		background = NewBackground(nil)
	}
	return &Tracer{
		id:         id,
		scene:      sc,
		background: background,
	}
}

// Get tracer id.
func (tr *Tracer) Id() string {
	return tr.id
}

// Get the background sampler used for rays that miss all shapes.
func (tr *Tracer) Background() *Background {
	return tr.background
}

// Setup the tracer for a frame.
func (tr *Tracer) Setup(frameW, frameH uint32, frameBuffer []types.Color) error {
	if uint64(len(frameBuffer)) != uint64(frameW)*uint64(frameH) {
		return fmt.Errorf("%w: %dx%d frame, buffer len %d", ErrFrameBufferSize, frameW, frameH, len(frameBuffer))
	}

	tr.frameW = frameW
	tr.frameH = frameH
	tr.frameBuffer = frameBuffer
	tr.invW, tr.invH = 0, 0
	if frameW != 0 {
		tr.invW = 1.0 / float32(frameW)
	}
	if frameH != 0 {
		tr.invH = 1.0 / float32(frameH)
	}
	return nil
}

// Trace every pixel in the block rows and write the results to the frame buffer.
func (tr *Tracer) Trace(blockReq tracer.BlockRequest) (tracer.Stats, error) {
	start := time.Now()
	stats := tracer.Stats{BlockY: blockReq.BlockY, BlockH: blockReq.BlockH}

	if blockReq.BlockY+blockReq.BlockH > tr.frameH {
		return stats, fmt.Errorf("%w: rows [%d, %d) in frame of height %d", ErrBlockOutOfBounds, blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.frameH)
	}

	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		row := tr.frameBuffer[y*tr.frameW : (y+1)*tr.frameW]
		for x := range row {
			row[x] = tr.PerPixel(tr.Coord(uint32(x), y))
		}
	}

	stats.RenderTime = time.Since(start)
	return stats, nil
}

// Map a pixel to normalized device coordinates in [-1, 1). The Y axis
// is not flipped.
func (tr *Tracer) Coord(x, y uint32) types.Vec2 {
	coord := types.XY(float32(x)*tr.invW, float32(y)*tr.invH)
	return coord.Mul(2).Sub(types.XY(1, 1))
}

// Get the unit direction of the primary ray through coord. The camera
// basis must have been updated for the current frame.
func (tr *Tracer) RayDirection(coord types.Vec2) types.Vec3 {
	cam := tr.scene.Camera
	pos := cam.FirstPoint.
		Add(cam.DirU.Mul(coord[0] * cam.ViewWidth * .5)).
		Add(cam.DirV.Mul(coord[1] * (cam.ViewWidth / cam.Ratio) * .5))
	return pos.Sub(cam.Origin).Normalize()
}

// Compute the color for the primary ray through coord.
func (tr *Tracer) PerPixel(coord types.Vec2) types.Color {
	color := tr.background.Fetch(coord)

	orig := tr.scene.Camera.Origin
	dir := tr.RayDirection(coord)

	var minDist float32
	var found bool
	for _, shape := range tr.scene.Shapes {
		switch sh := shape.(type) {
		case *scene.Sphere:
			dist, hit := Intersect(orig, dir, sh)
			if !hit || (found && !(dist < minDist)) {
				continue
			}
			found = true
			minDist = dist
			color = tr.shade(orig.Add(dir.Mul(dist)), sh)
		}
	}

	return color
}

// Apply Lambertian shading for the point light to a sphere hit point.
func (tr *Tracer) shade(hitPoint types.Vec3, sphere *scene.Sphere) types.Color {
	normal := hitPoint.Sub(sphere.Center).Normalize()
	dirToLight := tr.scene.Light.Position.Sub(hitPoint).Normalize()

	d := normal.Dot(dirToLight)
	if d > 0 {
		return sphere.Color.Scale(d)
	}
	return types.Black
}
