package tracer

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split a frame into at most numBlocks non-overlapping blocks.
	Schedule(numBlocks int, frameW, frameH uint32) []BlockRequest
}

// The band scheduler splits the frame into equal height horizontal bands
// using integer division. When frameH is not a multiple of the band count
// the rows past the last band are left unassigned.
type bandScheduler struct{}

// Create a new band scheduler instance.
func NewBandScheduler() BlockScheduler {
	return bandScheduler{}
}

// Split the frame into max(1, numBlocks) bands where band i covers the rows
// [i*(frameH/n), (i+1)*(frameH/n)).
func (bandScheduler) Schedule(numBlocks int, frameW, frameH uint32) []BlockRequest {
	n := uint32(1)
	if numBlocks > 1 {
		n = uint32(numBlocks)
	}

	blockH := frameH / n
	blocks := make([]BlockRequest, n)
	for i := uint32(0); i < n; i++ {
		blocks[i] = BlockRequest{
			FrameW: frameW,
			FrameH: frameH,
			BlockY: i * blockH,
			BlockH: blockH,
		}
	}
	return blocks
}

// Get the number of frame rows not covered by any of the given blocks,
// counting from the end of the last block to the bottom of the frame.
func UnassignedRows(blocks []BlockRequest, frameH uint32) uint32 {
	var end uint32
	for _, b := range blocks {
		if b.BlockY+b.BlockH > end {
			end = b.BlockY + b.BlockH
		}
	}
	if end >= frameH {
		return 0
	}
	return frameH - end
}
