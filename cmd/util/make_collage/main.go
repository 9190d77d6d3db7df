// make_collage builds a collage from a folder without the desktop window.
//
//	go run ./cmd/util/make_collage -W 1920 -H 1080 -o out.jpg ./photos
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dixieflatline76/Collager/config"
	"github.com/dixieflatline76/Collager/pkg/collage"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type options struct {
	width      int
	height     int
	output     string
	fit        string
	filter     string
	quality    int
	autoOrient bool
	workers    int
	quiet      bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a build error to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, collage.ErrEmptyImageSet), errors.Is(err, collage.ErrInvalidDimensions):
		return 2
	default:
		return 1
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := options{
		width:      config.DefaultCanvasWidth,
		height:     config.DefaultCanvasHeight,
		output:     "collage" + collage.DefaultExtension,
		fit:        config.DefaultFitMode,
		filter:     config.DefaultResampleFilter,
		quality:    config.DefaultJPEGQuality,
		autoOrient: true,
	}

	cmd := &cobra.Command{
		Use:   "make_collage [folder]",
		Short: "Arrange the images of a folder into one grid collage",
		Long: `Arrange the images of a folder into one grid collage.

Images are placed in filename order, left to right and top to bottom. Each
image is scaled to cover its cell and cropped to fit. The output format
follows the extension of --output; files without one are saved as JPEG.`,
		Version:       config.AppVersion,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts, out)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", opts.width, "collage width in pixels")
	cmd.Flags().IntVarP(&opts.height, "height", "H", opts.height, "collage height in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "destination file")
	cmd.Flags().StringVar(&opts.fit, "fit", opts.fit, "crop placement: center, smart")
	cmd.Flags().StringVar(&opts.filter, "filter", opts.filter, "resample filter: lanczos, catmullrom, mitchellnetravali, linear, box, nearest")
	cmd.Flags().IntVarP(&opts.quality, "quality", "q", opts.quality, "JPEG quality (1-100)")
	cmd.Flags().BoolVar(&opts.autoOrient, "auto-orient", opts.autoOrient, "apply EXIF orientation of JPEG files")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel decodes (0 = number of CPUs)")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "do not print progress")

	return cmd
}

func run(ctx context.Context, dir string, opts options, out io.Writer) error {
	spec := collage.Spec{Width: opts.width, Height: opts.height}
	if err := spec.Validate(); err != nil {
		return err
	}

	paths, err := collage.ListImages(dir)
	if err != nil {
		return err
	}

	var sink collage.ProgressSink = collage.NopProgress
	if !opts.quiet {
		sink = &consoleProgress{out: out}
	}

	fitter := collage.NewFitter(collage.ParseFitMode(opts.fit), collage.ParseFilter(opts.filter))
	loadOpts := collage.LoadOptions{AutoOrient: opts.autoOrient, Workers: opts.workers}
	canvas, err := collage.NewAssembler(fitter).AssembleFiles(ctx, paths, spec.Width, spec.Height, loadOpts, sink)
	if err != nil {
		return err
	}

	dest, size, err := collage.Save(canvas, opts.output, collage.SaveOptions{JPEGQuality: opts.quality})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %d images as %s (%dx%d, %s)\n", len(paths), dest, spec.Width, spec.Height, humanize.Bytes(uint64(size)))
	return nil
}

// consoleProgress prints whole-percent progress on a single line.
type consoleProgress struct {
	out  io.Writer
	last int
}

func (p *consoleProgress) Report(percent float64) {
	whole := int(percent)
	if whole == p.last && whole != 100 {
		return
	}
	p.last = whole
	fmt.Fprintf(p.out, "\rPlacing images: %3d%%", whole)
	if whole == 100 {
		fmt.Fprintln(p.out)
	}
}
