package interactive

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/achilleasa/lumen/log"
	"github.com/achilleasa/lumen/renderer"
	"github.com/achilleasa/lumen/scene"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Interval between window title refreshes.
const titleRefreshInterval = 250 * time.Millisecond

// An interactive opengl-based renderer that continuously renders frames and
// displays them in a resizable window.
type Renderer struct {
	*renderer.Renderer

	logger log.Logger

	// opengl handles
	window    *glfw.Window
	texFbo    uint32
	fbTexture uint32
	texW      int32
	texH      int32

	// state
	paused        bool
	logStats      bool
	pendingResize bool
	lastTitle     time.Time
}

// Create a new interactive renderer. This must be invoked from the main
// go-routine; the returned renderer locks its OS thread until Close is called.
func New(sc *scene.Scene, opts renderer.Options) (*Renderer, error) {
	base, err := renderer.New(sc, opts)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		Renderer: base,
		logger:   log.New("interactive"),
	}

	runtime.LockOSThread()
	if err = r.initGL(opts); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func (r *Renderer) initGL(opts renderer.Options) error {
	var err error
	if err = glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	r.window, err = glfw.CreateWindow(int(opts.FrameW), int(opts.FrameH), "lumen", nil, nil)
	if err != nil {
		return fmt.Errorf("could not create opengl window: %s", err.Error())
	}
	r.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return fmt.Errorf("could not init opengl: %s", err.Error())
	}

	// Setup texture for image data
	gl.GenTextures(1, &r.fbTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fbTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	r.allocTexture()

	// Attach texture to FBO
	gl.GenFramebuffers(1, &r.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.fbTexture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	// Bind event callbacks
	r.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	r.window.SetKeyCallback(r.onKeyEvent)
	r.window.SetCharCallback(r.onCharEvent)
	r.window.SetFramebufferSizeCallback(r.onFramebufferSizeEvent)

	// The framebuffer may differ from the requested window size on hi-dpi displays
	fbW, fbH := r.window.GetFramebufferSize()
	r.onFramebufferSizeEvent(r.window, fbW, fbH)

	return nil
}

// (Re)allocate texture storage to match the current frame dims.
func (r *Renderer) allocTexture() {
	frame := r.Frame()
	r.texW, r.texH = int32(frame.Width), int32(frame.Height)
	gl.BindTexture(gl.TEXTURE_2D, r.fbTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, r.texW, r.texH, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// Shutdown the renderer and release the window.
func (r *Renderer) Close() {
	if r.window != nil {
		r.window.Destroy()
		r.window = nil
	}
	glfw.Terminate()
	runtime.UnlockOSThread()
}

// Render frames until the window is closed.
func (r *Renderer) Render() error {
	if r.window == nil {
		return renderer.ErrWindowClosed
	}

	for !r.window.ShouldClose() {
		glfw.PollEvents()

		if r.pendingResize {
			r.pendingResize = false
			r.allocTexture()
			gl.Viewport(0, 0, r.texW, r.texH)
		}

		if !r.paused && r.texW > 0 && r.texH > 0 {
			if err := r.Renderer.Render(); err != nil {
				return err
			}

			frame := r.Frame()
			gl.BindTexture(gl.TEXTURE_2D, r.fbTexture)
			gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, r.texW, r.texH, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&frame.Pixels[0]))

			if r.logStats {
				r.logFrameStats()
			}
			r.updateTitle()
		}

		// Copy texture data to framebuffer. Frame row 0 is the top
		// scanline so the destination rectangle is flipped.
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.texFbo)
		gl.BlitFramebuffer(0, 0, r.texW, r.texH, 0, r.texH, r.texW, 0, gl.COLOR_BUFFER_BIT, gl.LINEAR)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

		r.window.SwapBuffers()
	}
	return nil
}

func (r *Renderer) updateTitle() {
	if time.Since(r.lastTitle) < titleRefreshInterval {
		return
	}
	r.lastTitle = time.Now()

	stats := r.Stats()
	r.window.SetTitle(fmt.Sprintf(
		"lumen - %dx%d, %d threads, %.2f ms (%.1f fps)",
		r.texW, r.texH, r.NumThreads(),
		float64(stats.RenderTime)/float64(time.Millisecond), stats.FPS(),
	))
}

func (r *Renderer) logFrameStats() {
	stats := r.Stats()
	for _, stat := range stats.Tracers {
		r.logger.Noticef("%s: rows [%d, %d) %02.1f%% in %s", stat.Id, stat.BlockY, stat.BlockY+stat.BlockH, stat.FramePercent, stat.RenderTime)
	}
	r.logger.Noticef("frame: %s (%.1f fps)", stats.RenderTime, stats.FPS())
}

// Adjust the thread count by delta, clamping it to the interactive range.
func (r *Renderer) adjustThreads(delta int) {
	r.SetNumThreads(renderer.ClampInteractiveThreads(r.NumThreads() + delta))
	r.logger.Infof("rendering with %d threads", r.NumThreads())
}

func (r *Renderer) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeySpace:
		if action == glfw.Press {
			r.paused = !r.paused
			r.logger.Infof("paused: %t", r.paused)
		}
	case glfw.KeyTab:
		if action == glfw.Press {
			r.logStats = !r.logStats
		}
	case glfw.KeyKPAdd:
		r.adjustThreads(1)
	case glfw.KeyKPSubtract:
		r.adjustThreads(-1)
	}
}

// Handle +/- from the main keyboard regardless of layout.
func (r *Renderer) onCharEvent(w *glfw.Window, char rune) {
	switch char {
	case '+', '=':
		r.adjustThreads(1)
	case '-', '_':
		r.adjustThreads(-1)
	}
}

func (r *Renderer) onFramebufferSizeEvent(w *glfw.Window, width, height int) {
	if width < 0 || height < 0 {
		return
	}
	r.Resize(uint32(width), uint32(height))
	r.pendingResize = true
}
