package waveguide

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fakeSchematic struct {
	frames   int
	vertices int
	clip     [4]float32
	w, h     int
}

func (f *fakeSchematic) Render(dl *DrawList) error {
	f.frames++
	f.vertices = len(dl.VtxBuffer)
	if len(dl.CmdBuffer) > 0 {
		f.clip = dl.CmdBuffer[0].ClipRect
	}
	return nil
}

func (f *fakeSchematic) Resize(w, h int) { f.w, f.h = w, h }

type waveCall struct {
	boundaries  []float32
	layerHeight float32
	viewWidth   float32
	phase       float32
}

type fakeWave struct {
	calls []waveCall
	err   error
}

func (f *fakeWave) Render(b []float32, layerHeight, viewWidth, phase float32) error {
	f.calls = append(f.calls, waveCall{b, layerHeight, viewWidth, phase})
	return f.err
}

func (f *fakeWave) last() waveCall { return f.calls[len(f.calls)-1] }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestScene(t *testing.T, opts ...SceneOption) (*Scene, *fakeSchematic, *fakeWave) {
	t.Helper()
	sch := &fakeSchematic{}
	wave := &fakeWave{}
	opts = append([]SceneOption{
		WithSchematicRenderer(sch),
		WithWaveRenderer(wave),
		WithClockStart(t0),
	}, opts...)

	s, err := NewScene(3, DefaultGeometry(), opts...)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Layers = 3
	cfg.Boundaries = []float32{0, 20, 50, 70}
	if err := s.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return s, sch, wave
}

func TestScene_FrameFeedsBothViews(t *testing.T) {
	s, sch, wave := newTestScene(t)

	if err := s.Frame(nil, unitViewport(), t0.Add(time.Second)); err != nil {
		t.Fatal(err)
	}

	if sch.frames != 1 || sch.vertices == 0 {
		t.Errorf("Expected one schematic frame with geometry, got %d frames, %d vertices", sch.frames, sch.vertices)
	}
	if sch.clip != [4]float32{0, 0, 100, 100} {
		t.Errorf("Expected schematic clipped to its pane, got %v", sch.clip)
	}

	call := wave.last()
	if diff := cmp.Diff([]float32{-35, -15, 15, 35}, call.boundaries); diff != "" {
		t.Errorf("wave boundaries mismatch (-want +got):\n%s", diff)
	}
	if call.layerHeight != 10 || call.viewWidth != 100 {
		t.Errorf("Expected height 10 and view width 100, got %f and %f", call.layerHeight, call.viewWidth)
	}
	if !approx(call.phase, PhaseRate, 1e-5) {
		t.Errorf("Expected phase pi after 1s, got %f", call.phase)
	}
	if s.Frames() != 1 {
		t.Errorf("Expected frame count 1, got %d", s.Frames())
	}
}

func TestScene_DragUpdatesViewsSameFrame(t *testing.T) {
	redraws := 0
	s, _, wave := newTestScene(t, WithRedraw(func() { redraws++ }))
	in := NewInputState()
	vp := unitViewport()

	// Frame 1 lays out the handles, frame 2 grabs handle 1 at (35, 55).
	if err := s.Frame(in, vp, t0); err != nil {
		t.Fatal(err)
	}
	pressAt(in, 35, 55)
	if err := s.Frame(in, vp, t0); err != nil {
		t.Fatal(err)
	}
	if !s.Dragging() {
		t.Fatal("Expected drag to start")
	}

	pressAt(in, 45, 55)
	if err := s.Frame(in, vp, t0); err != nil {
		t.Fatal(err)
	}

	if got := s.Model().Boundary(1); got != 30 {
		t.Errorf("Expected b[1]=30 after a 10px drag, got %f", got)
	}
	if got := wave.last().boundaries[1]; got != -5 {
		t.Errorf("Expected the realtime view to see the move in the same frame, got %f", got)
	}
	if got := s.View().Layers()[0].W; got != 30 {
		t.Errorf("Expected schematic layer 0 to be 30px wide, got %f", got)
	}
	if redraws != 1 {
		t.Errorf("Expected one redraw, got %d", redraws)
	}
}

func TestScene_PauseFreezesPhase(t *testing.T) {
	s, _, wave := newTestScene(t)
	in := NewInputState()

	in.SetKey(KeySpace, true)
	if err := s.Frame(in, unitViewport(), t0.Add(time.Second)); err != nil {
		t.Fatal(err)
	}
	if !s.Paused() {
		t.Fatal("Expected Space to pause")
	}
	frozen := wave.last().phase

	in.Reset()
	if err := s.Frame(in, unitViewport(), t0.Add(5*time.Second)); err != nil {
		t.Fatal(err)
	}
	if got := wave.last().phase; got != frozen {
		t.Errorf("Expected phase to stay %f while paused, got %f", frozen, got)
	}

	s.TogglePause(t0.Add(5 * time.Second))
	if got := s.Phase(t0.Add(6 * time.Second)); !approx(got, 2*PhaseRate, 1e-4) {
		t.Errorf("Expected phase to resume from the frozen value, got %f", got)
	}
}

func TestScene_ResetKey(t *testing.T) {
	s, _, _ := newTestScene(t)
	in := NewInputState()

	in.SetKey(KeyR, true)
	if err := s.Frame(in, unitViewport(), t0); err != nil {
		t.Fatal(err)
	}

	want := []float32{0, 70.0 / 3, 140.0 / 3, 70}
	if diff := cmp.Diff(want, s.Model().Boundaries(), cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("boundaries after reset (-want +got):\n%s", diff)
	}
}

func TestScene_ApplyRejectsInvalid(t *testing.T) {
	s, _, _ := newTestScene(t)
	before := s.Model().Boundaries()

	cfg := DefaultConfig()
	cfg.Layers = 2
	cfg.Boundaries = []float32{0, 80, 70}
	if err := s.Apply(cfg); !errors.Is(err, ErrBoundaryOrder) {
		t.Errorf("Expected ErrBoundaryOrder, got %v", err)
	}
	if diff := cmp.Diff(before, s.Model().Boundaries()); diff != "" {
		t.Errorf("rejected config changed the model (-want +got):\n%s", diff)
	}
}

func TestScene_ApplyRebuilds(t *testing.T) {
	var buf bytes.Buffer
	s, _, wave := newTestScene(t, WithLogger(log.New(&buf)))

	cfg := DefaultConfig()
	cfg.Layers = 5
	if err := s.Apply(cfg); err != nil {
		t.Fatal(err)
	}
	if err := s.Frame(nil, unitViewport(), t0); err != nil {
		t.Fatal(err)
	}
	if got := len(wave.last().boundaries); got != 6 {
		t.Errorf("Expected 6 boundaries after rebuild, got %d", got)
	}
	if got := len(s.View().Handles()); got != 6 {
		t.Errorf("Expected 6 handles after rebuild, got %d", got)
	}
	if !strings.Contains(buf.String(), "scene rebuilt") {
		t.Errorf("Expected rebuild to be logged, got %q", buf.String())
	}
}

func TestScene_RendererError(t *testing.T) {
	s, _, wave := newTestScene(t)
	wave.err = errors.New("context lost")

	if err := s.Frame(nil, unitViewport(), t0); err == nil || !strings.Contains(err.Error(), "render wave") {
		t.Errorf("Expected wrapped wave error, got %v", err)
	}
}

func TestNewScene_InvalidGeometry(t *testing.T) {
	g := DefaultGeometry()
	g.SchematicWidth = 50
	if _, err := NewScene(1, g); !errors.Is(err, ErrGeometry) {
		t.Errorf("Expected ErrGeometry, got %v", err)
	}
}
