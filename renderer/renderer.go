package renderer

import (
	"fmt"
	"image"
	"time"
	"unsafe"

	"github.com/achilleasa/lumen/asset/texture"
	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/tracer"
	"github.com/achilleasa/lumen/tracer/cpu"
	"github.com/achilleasa/lumen/types"
	"golang.org/x/sync/errgroup"
)

// A rendered frame. Pixels holds Width*Height packed colors in row-major
// order starting at the top-left pixel.
type FrameBuffer struct {
	Width  uint32
	Height uint32
	Pixels []types.Color
}

// Wrap the frame pixels in an image.RGBA. The returned image shares its
// pixel storage with the frame buffer.
func (fb FrameBuffer) Image() *image.RGBA {
	img := &image.RGBA{
		Stride: int(fb.Width) * 4,
		Rect:   image.Rect(0, 0, int(fb.Width), int(fb.Height)),
	}
	if len(fb.Pixels) != 0 {
		img.Pix = unsafe.Slice((*uint8)(unsafe.Pointer(&fb.Pixels[0])), len(fb.Pixels)*4)
	}
	return img
}

// The renderer splits each frame into horizontal bands and traces them in
// parallel using a CPU tracer.
type Renderer struct {
	logger log.Logger

	scene     *scene.Scene
	tracer    *cpu.Tracer
	scheduler tracer.BlockScheduler

	frameW      uint32
	frameH      uint32
	frameBuffer []types.Color
	numThreads  int

	stats FrameStats
}

// Create a new renderer for the given scene. A background image that cannot
// be loaded is reported and replaced by an opaque black background.
func New(sc *scene.Scene, opts Options) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}

	r := &Renderer{
		logger:     log.New("renderer"),
		scene:      sc,
		scheduler:  tracer.NewBandScheduler(),
		numThreads: DefaultNumThreads,
	}

	var bgTex *texture.Texture
	if opts.BackgroundPath != "" {
		var err error
		bgTex, err = texture.Load(opts.BackgroundPath)
		if err != nil {
			r.logger.Warningf("could not load background image; using black background: %v", err)
		} else {
			r.logger.Infof("loaded %dx%d background from %s", bgTex.Width, bgTex.Height, opts.BackgroundPath)
		}
	}

	r.tracer = cpu.NewTracer("cpu", sc, cpu.NewBackground(bgTex))
	r.SetNumThreads(opts.NumThreads)
	r.Resize(opts.FrameW, opts.FrameH)

	return r, nil
}

// Set the number of bands rendered in parallel. Values <= 0 are ignored.
func (r *Renderer) SetNumThreads(numThreads int) {
	if numThreads <= 0 {
		return
	}
	r.numThreads = numThreads
}

// Get the number of bands rendered in parallel.
func (r *Renderer) NumThreads() int {
	return r.numThreads
}

// Get the scene being rendered.
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Resize the frame buffer. Resizing to the current dims keeps the existing
// buffer.
func (r *Renderer) Resize(frameW, frameH uint32) {
	if r.frameBuffer != nil && frameW == r.frameW && frameH == r.frameH {
		return
	}

	r.frameW = frameW
	r.frameH = frameH
	r.frameBuffer = make([]types.Color, int(frameW)*int(frameH))
	r.logger.Debugf("resized frame buffer to %dx%d", frameW, frameH)
}

// Render a frame. Each band is traced by its own go-routine and Render
// returns once all bands have completed. Rows not covered by any band are
// filled with opaque black.
func (r *Renderer) Render() error {
	if r.frameW == 0 || r.frameH == 0 {
		return nil
	}

	start := time.Now()
	r.scene.Camera.Update(r.frameW, r.frameH)
	if err := r.tracer.Setup(r.frameW, r.frameH, r.frameBuffer); err != nil {
		return err
	}

	blocks := r.scheduler.Schedule(r.numThreads, r.frameW, r.frameH)
	blockStats := make([]tracer.Stats, len(blocks))

	var g errgroup.Group
	for index := range blocks {
		index := index
		g.Go(func() error {
			stats, err := r.tracer.Trace(blocks[index])
			blockStats[index] = stats
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("renderer: could not trace frame: %w", err)
	}

	if unassigned := tracer.UnassignedRows(blocks, r.frameH); unassigned != 0 {
		tail := r.frameBuffer[(r.frameH-unassigned)*r.frameW:]
		for i := range tail {
			tail[i] = types.Black
		}
	}

	r.updateStats(blockStats, time.Since(start))
	return nil
}

func (r *Renderer) updateStats(blockStats []tracer.Stats, renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(blockStats)),
		RenderTime: renderTime,
	}
	for index, bs := range blockStats {
		r.stats.Tracers[index] = TracerStat{
			Id:           fmt.Sprintf("%s-%d", r.tracer.Id(), index),
			BlockY:       bs.BlockY,
			BlockH:       bs.BlockH,
			FramePercent: 100.0 * float32(bs.BlockH) / float32(r.frameH),
			RenderTime:   bs.RenderTime,
		}
	}
	r.logger.Debugf("rendered %dx%d frame using %d bands in %s", r.frameW, r.frameH, len(blockStats), renderTime)
}

// Get the last rendered frame.
func (r *Renderer) Frame() FrameBuffer {
	return FrameBuffer{
		Width:  r.frameW,
		Height: r.frameH,
		Pixels: r.frameBuffer,
	}
}

// Get render statistics for the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}
