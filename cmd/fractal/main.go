// Command fractal renders Mandelbrot and Burning Ship fractals.
//
// Usage:
//
//	fractal [flags] <mandelbrot|burning-ship> [iterations]
//
// By default it opens a resizable window: I and O zoom, the arrow keys
// pan, H toggles the overlay and Escape quits. With -output it renders a
// single frame to an image file instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/export"
	"github.com/gogpu/fractal/internal/hud"
	"github.com/gogpu/fractal/internal/viewer"
)

// Exit codes.
const (
	exitOK     = 0
	exitFatal  = 1
	exitConfig = 2
)

// options is the parsed command line.
type options struct {
	fractal fractal.Fractal
	width   int
	height  int
	workers int
	tps     int
	output  string
	upscale int
	panX    float64
	panY    float64
	scale   float64
	hud     bool
	verbose bool
}

// errUsage marks a command line that only needs the usage text.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "fractal: %v\n", err)
		}
		return exitConfig
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	fractal.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	log := fractal.Logger()

	view, err := fractal.NewViewState(opts.width, opts.height)
	if err != nil {
		fmt.Fprintf(stderr, "fractal: %v\n", err)
		return exitConfig
	}
	view.SetPan(opts.panX, opts.panY)
	if err := view.SetScale(opts.scale); err != nil {
		fmt.Fprintf(stderr, "fractal: %v\n", err)
		return exitConfig
	}

	engine := fractal.NewEngine(fractal.WithWorkers(opts.workers))
	defer engine.Close()

	session, err := fractal.NewSession(opts.fractal, view, engine)
	if err != nil {
		fmt.Fprintf(stderr, "fractal: %v\n", err)
		return exitConfig
	}

	if opts.output != "" {
		if err := writeFrame(session, opts); err != nil {
			log.Error("export failed", "path", opts.output, "err", err)
			return exitFatal
		}
		return exitOK
	}

	cfg := viewer.Config{
		Title:  "Fractal Viewer - " + opts.fractal.Kind().String(),
		Width:  opts.width,
		Height: opts.height,
		TPS:    opts.tps,
		HUD:    opts.hud,
	}
	if err := viewer.Run(session, cfg); err != nil {
		log.Error("viewer stopped", "err", err)
		return exitFatal
	}
	return exitOK
}

// writeFrame renders one frame and saves it to opts.output.
func writeFrame(session *fractal.Session, opts *options) error {
	if _, err := session.Update(); err != nil {
		return err
	}
	img := session.Buffer().ToImage()
	if opts.hud {
		hud.Draw(img, hud.Lines(session.Fractal(), session.View(), session.Renders()))
	}
	return export.WriteFile(opts.output, export.Upscale(img, opts.upscale))
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.IntVar(&opts.width, "width", 640, "window or image width in pixels")
	fs.IntVar(&opts.height, "height", 360, "window or image height in pixels")
	fs.IntVar(&opts.workers, "workers", 0, "render goroutines (0 = GOMAXPROCS)")
	fs.IntVar(&opts.tps, "tps", 60, "window updates per second")
	fs.StringVar(&opts.output, "output", "", "render one frame to this file (.png, .bmp, .tif) instead of opening a window")
	fs.IntVar(&opts.upscale, "upscale", 1, "integer magnification of the exported image")
	fs.Float64Var(&opts.panX, "pan-x", 0, "initial real offset of the view centre")
	fs.Float64Var(&opts.panY, "pan-y", 0, "initial imaginary offset of the view centre")
	fs.Float64Var(&opts.scale, "scale", fractal.DefaultScale, "initial zoom in pixels per unit")
	fs.BoolVar(&opts.hud, "hud", false, "draw the view overlay")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fractal [flags] <fractal> [iterations]\n")
		fmt.Fprintf(stderr, "Available fractals: %s\n", kindNames())
		fs.PrintDefaults()
	}

	// flag stops at the first positional argument; resume after each one
	// so flags may follow the fractal name.
	var positional []string
	for rest := args; ; {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	var name, iterations string
	switch len(positional) {
	case 1:
		name = positional[0]
	case 2:
		name, iterations = positional[0], positional[1]
	default:
		fs.Usage()
		return nil, errUsage
	}

	f, err := fractal.Parse(name, iterations)
	if err != nil {
		if errors.Is(err, fractal.ErrUnknownFractal) {
			fs.Usage()
		}
		return nil, err
	}
	opts.fractal = f

	if opts.upscale < 1 {
		return nil, fmt.Errorf("-upscale must be at least 1, got %d", opts.upscale)
	}
	if opts.output != "" {
		if _, err := export.FormatFor(opts.output); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func kindNames() string {
	var names []string
	for _, k := range fractal.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
