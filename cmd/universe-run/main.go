package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"universe-game/internal/app"
	"universe-game/internal/render"
	"universe-game/internal/swarm"
)

type options struct {
	app.Config
	steps      int
	every      int
	video      string
	fps        int
	chart      string
	dumpConfig bool
	verbose    bool
}

func main() {
	opts := options{Config: *app.NewConfig()}
	opts.Bind(flag.CommandLine)
	flag.IntVar(&opts.steps, "steps", 1000, "ticks to simulate")
	flag.IntVar(&opts.every, "every", 10, "sample observables every N ticks")
	flag.StringVar(&opts.video, "video", "", "write an MJPEG AVI of the run to this path")
	flag.IntVar(&opts.fps, "fps", 30, "video frame rate")
	flag.StringVar(&opts.chart, "chart", "", "write a PNG chart of polarization and gyration to this path")
	flag.BoolVar(&opts.dumpConfig, "dump-config", false, "print the resolved configuration as TOML and exit")
	flag.BoolVar(&opts.verbose, "v", false, "log every sample")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(opts, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// validate rejects flag combinations that would only fail after the run.
func (o options) validate() error {
	if o.steps < 0 {
		return fmt.Errorf("-steps must not be negative, got %d", o.steps)
	}
	if o.chart != "" && o.steps < 1 {
		return errors.New("-chart needs at least one step to plot")
	}
	if o.video != "" && o.Size < 1 {
		return fmt.Errorf("-size must be positive for -video, got %d", o.Size)
	}
	return nil
}

func run(opts options, logger *slog.Logger) error {
	if err := opts.validate(); err != nil {
		return err
	}
	cfg, _, err := opts.RunConfig()
	if err != nil {
		return err
	}
	if opts.dumpConfig {
		return swarm.WriteConfig(os.Stdout, cfg)
	}

	world, err := opts.World()
	if err != nil {
		return err
	}
	logger.Info("starting run", "preset", world.Name(), "config", cfg.String(), "seed", world.Seed(), "steps", opts.steps)

	var rec *recorder
	if opts.video != "" {
		rec, err = newRecorder(opts, world)
		if err != nil {
			return err
		}
		defer rec.close(logger)
		if err := rec.frame(world); err != nil {
			return err
		}
	}

	every := max(opts.every, 1)
	var tel swarm.Telemetry
	tel.Sample(0, world.State())
	start := time.Now()
	for tick := 1; tick <= opts.steps; tick++ {
		world.Step()
		if rec != nil {
			if err := rec.frame(world); err != nil {
				return err
			}
		}
		if tick%every == 0 || tick == opts.steps {
			tel.Sample(tick, world.State())
			n := len(tel.Ticks) - 1
			logger.Debug("sample", "tick", tick, "polarization", tel.Polarization[n], "gyration", tel.Gyration[n])
		}
	}
	tel.Final = world.State()

	pol, gyr := tel.Last()
	logger.Info("run complete",
		"ticks", world.Tick(),
		"polarization", fmt.Sprintf("%.4f", pol),
		"gyration", fmt.Sprintf("%.4f", gyr),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if opts.chart != "" {
		if err := writeChart(opts.chart, world.Name(), tel); err != nil {
			return err
		}
		logger.Info("chart written", "path", opts.chart)
	}
	return nil
}

func writeChart(path, title string, tel swarm.Telemetry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := render.WriteTelemetryChart(f, title, tel); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// recorder draws every tick into the video stream.
type recorder struct {
	path    string
	video   *render.VideoWriter
	raster  *render.Rasterizer
	camera  *render.Camera
	palette render.Palette
	points  []r2.Vec
}

func newRecorder(opts options, world *swarm.World) (*recorder, error) {
	vw, err := render.NewVideoWriter(opts.video, opts.Size, opts.Size, opts.fps)
	if err != nil {
		return nil, err
	}
	raster := render.NewRasterizer(opts.Size, opts.Size)
	raster.Trails = opts.UseTrails(world)
	raster.DrawRadius = opts.DrawRadius
	return &recorder{
		path:    opts.video,
		video:   vw,
		raster:  raster,
		camera:  render.NewCamera(world.BoxWidth(), opts.Size, opts.Size, world.Bounded()),
		palette: render.DefaultPalette(),
	}, nil
}

func (r *recorder) frame(world *swarm.World) error {
	r.points = world.Positions(r.points[:0])
	r.raster.Draw(r.camera.Update(r.points), r.points, world.Radius())
	return r.video.WriteFrame(render.Image(r.raster.Grid, r.palette))
}

func (r *recorder) close(logger *slog.Logger) {
	if err := r.video.Close(); err != nil {
		logger.Error("close video", "path", r.path, "err", err)
		return
	}
	logger.Info("video written", "path", r.path, "frames", r.video.Frames())
}
