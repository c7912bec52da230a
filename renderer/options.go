package renderer

const (
	// The number of bands used when no thread count is specified.
	DefaultNumThreads = 1

	// The thread count range exposed by the interactive renderer.
	MinInteractiveThreads = 1
	MaxInteractiveThreads = 24
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of horizontal bands traced in parallel.
	NumThreads int

	// Local path or http(s) URL of the background image. An empty path or
	// a path that fails to load renders an opaque black background.
	BackgroundPath string
}

// Clamp a thread count to the range exposed by the interactive renderer.
func ClampInteractiveThreads(numThreads int) int {
	if numThreads < MinInteractiveThreads {
		return MinInteractiveThreads
	}
	if numThreads > MaxInteractiveThreads {
		return MaxInteractiveThreads
	}
	return numThreads
}
