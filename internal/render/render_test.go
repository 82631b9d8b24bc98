package render

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"universe-game/internal/core"
	"universe-game/internal/swarm"
	prng "universe-game/pkg/core"
)

func TestBoxViewMapsCorners(t *testing.T) {
	v := BoxView(5, 800, 400)
	if x, y := v.Project(r2.Vec{X: 5, Y: 5}); x != 800 || y != 400 {
		t.Fatalf("far corner projected to (%v, %v)", x, y)
	}
	if x, y := v.Project(r2.Vec{}); x != 0 || y != 0 {
		t.Fatalf("origin projected to (%v, %v)", x, y)
	}
}

func TestFitViewIncludesPadding(t *testing.T) {
	pts := []r2.Vec{{X: -1, Y: 2}, {X: 3, Y: 4}}
	v := FitView(pts, 100, 100, 0.5)
	x, y := v.Project(r2.Vec{X: -1.5, Y: 1.5})
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("padded lower corner at (%v, %v)", x, y)
	}
	x, y = v.Project(r2.Vec{X: 3.5, Y: 4.5})
	if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Fatalf("padded upper corner at (%v, %v)", x, y)
	}

	single := FitView([]r2.Vec{{X: 1, Y: 1}}, 10, 10, 0)
	if math.IsInf(single.ScaleX, 0) || math.IsNaN(single.ScaleX) {
		t.Fatal("a single point must not produce an infinite scale")
	}
}

func TestCameraSmoothing(t *testing.T) {
	pts := []r2.Vec{{X: 100, Y: 100}, {X: 200, Y: 200}}

	fixed := NewCamera(5, 800, 800, true)
	if v := fixed.Update(pts); v != BoxView(5, 800, 800) {
		t.Fatalf("bounded camera moved: %+v", v)
	}

	moving := NewCamera(5, 800, 800, false)
	start := moving.View()
	target := FitView(pts, 800, 800, fitPadding)
	v := moving.Update(pts)
	want := start.ScaleX + unboundedSmooth*(target.ScaleX-start.ScaleX)
	if math.Abs(v.ScaleX-want) > 1e-9 {
		t.Fatalf("scale = %v, want %v", v.ScaleX, want)
	}
}

func TestRasterizerDotsAndTrails(t *testing.T) {
	r := NewRasterizer(20, 20)
	view := BoxView(20, 20, 20)
	r.Draw(view, []r2.Vec{{X: 10, Y: 10}}, 0)

	cells := r.Grid.Cells()
	if cells[r.Grid.Index(10, 10)] != dotIntensity {
		t.Fatal("dot center not drawn")
	}
	if cells[r.Grid.Index(12, 10)] != dotIntensity || cells[r.Grid.Index(13, 10)] != 0 {
		t.Fatal("dot radius should be two pixels")
	}

	r.Draw(view, []r2.Vec{{X: 2, Y: 2}}, 0)
	if cells[r.Grid.Index(10, 10)] != 0 {
		t.Fatal("without trails the previous frame must be cleared")
	}

	r.Trails = true
	r.Draw(view, []r2.Vec{{X: 15, Y: 15}}, 0)
	if got := cells[r.Grid.Index(2, 2)]; got != dotIntensity-5 {
		t.Fatalf("trail intensity = %d, want %d", got, dotIntensity-5)
	}
}

func TestRasterizerRadiusOutline(t *testing.T) {
	r := NewRasterizer(40, 40)
	r.DrawRadius = true
	r.Draw(BoxView(40, 40, 40), []r2.Vec{{X: 20, Y: 20}}, 10)
	if got := r.Grid.Cells()[r.Grid.Index(30, 20)]; got != circleIntensity {
		t.Fatalf("outline pixel = %d, want %d", got, circleIntensity)
	}
}

func TestFillRGBABlends(t *testing.T) {
	pal := Palette{Foreground: color.RGBA{R: 200, A: 255}, Background: color.RGBA{B: 100, A: 255}}
	buf := make([]byte, 12)
	FillRGBA(buf, []uint8{0, 255, 51}, pal)
	want := []byte{0, 0, 100, 255, 200, 0, 0, 255, 40, 0, 80, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}

	g := core.NewByteGrid(2, 1)
	g.Raise(1, 0, 255)
	img := Image(g, DefaultPalette())
	if c := img.RGBAAt(0, 0); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("background pixel = %v", c)
	}
	if c := img.RGBAAt(1, 0); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("foreground pixel = %v", c)
	}
}

func TestVideoWriterWritesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	vw, err := NewVideoWriter(path, 32, 32, 10)
	if err != nil {
		t.Fatalf("NewVideoWriter: %v", err)
	}
	r := NewRasterizer(32, 32)
	for i := range 3 {
		r.Draw(BoxView(32, 32, 32), []r2.Vec{{X: float64(4 + 8*i), Y: 16}}, 0)
		if err := vw.WriteFrame(Image(r.Grid, DefaultPalette())); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	if err := vw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if vw.Frames() != 3 {
		t.Fatalf("frames = %d", vw.Frames())
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("video not written: %v", err)
	}
}

func TestWriteTelemetryChart(t *testing.T) {
	cfg := swarm.DefaultConfig()
	cfg.NParticles = 30
	tel, err := swarm.Record(cfg, 20, 5, prng.NewRNG(4))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteTelemetryChart(&buf, "test", tel); err != nil {
		t.Fatalf("WriteTelemetryChart: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("expected PNG output")
	}

	if err := WriteChart(&buf, "short", 100, 100, Series{Name: "x", X: []float64{1}, Y: []float64{1}}); err == nil {
		t.Fatal("single point series should be rejected")
	}
}
