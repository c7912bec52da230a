package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/achilleasa/lumen/renderer"
	"github.com/achilleasa/lumen/renderer/interactive"
	"github.com/achilleasa/lumen/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	opts := renderer.Options{
		FrameW:         uint32(ctx.Int("width")),
		FrameH:         uint32(ctx.Int("height")),
		NumThreads:     ctx.Int("threads"),
		BackgroundPath: ctx.String("background"),
	}

	if ctx.Int("width") < 0 || ctx.Int("height") < 0 {
		return opts, fmt.Errorf("invalid frame dimensions %dx%d", ctx.Int("width"), ctx.Int("height"))
	}
	if opts.NumThreads <= 0 {
		logger.Warningf("ignoring invalid thread count %d", opts.NumThreads)
	}
	return opts, nil
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.New(scene.NewDefault(), opts)
	if err != nil {
		return err
	}

	if err = r.Render(); err != nil {
		return err
	}

	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer f.Close()

	if err = writeFrame(f, r.Frame()); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Encode a frame as png. Zero-area frames cannot be encoded.
func writeFrame(w io.Writer, frame renderer.FrameBuffer) error {
	if frame.Width == 0 || frame.Height == 0 {
		return fmt.Errorf("cannot encode empty %dx%d frame", frame.Width, frame.Height)
	}
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("could not encode png: %w", err)
	}
	return nil
}

// Render an interactive view of the scene.
func RenderInteractive(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	r, err := interactive.New(scene.NewDefault(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Notice("press SPACE to pause, +/- to change thread count, TAB to log frame stats and ESC to exit")
	return r.Render()
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d-%d", stat.BlockY, stat.BlockY+stat.BlockH),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%s (%.1f fps)", stats.RenderTime, stats.FPS())})

	table.Render()
	return buf.String()
}
