package tracer

import (
	"time"

	"github.com/achilleasa/lumen/types"
)

// A unit of work that is processed by a tracer: a horizontal band of
// full-width rows.
type BlockRequest struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Block start row and height.
	BlockY uint32
	BlockH uint32
}

// Tracer statistics for a single block.
type Stats struct {
	// The rendered block start row and height.
	BlockY uint32
	BlockH uint32

	// The time for rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Setup the tracer for a frame of the given dimensions. The tracer
	// writes the pixels of each traced block into frameBuffer which must
	// hold frameW * frameH entries.
	Setup(frameW, frameH uint32, frameBuffer []types.Color) error

	// Trace a block. Blocks passed to concurrent Trace calls must not
	// overlap.
	Trace(BlockRequest) (Stats, error)
}
