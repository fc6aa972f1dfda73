package waveguide

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// SchematicRenderer draws the schematic draw list onto a surface.
type SchematicRenderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// WaveRenderer draws the realtime view of the layers. boundaries are
// centered on the origin; viewWidth logical units span the surface width.
type WaveRenderer interface {
	Render(boundaries []float32, layerHeight, viewWidth, phase float32) error
}

// Scene drives one frame of both views from a shared boundary model.
//
// Within a frame the boundary mutation of an active drag always happens
// before either view reads the boundaries. All methods must be called from
// the render thread.
type Scene struct {
	geom  Geometry
	model *BoundaryModel
	view  *SchematicView
	drag  *HandleDrag

	schematic SchematicRenderer
	wave      WaveRenderer
	redraw    func()
	logger    *log.Logger
	actions   *ActionRegistry

	clock       *PhaseClock
	paused      bool
	pausedPhase float32

	viewport      Viewport
	now           time.Time
	drawnThisTick bool
	frames        uint64
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithSchematicRenderer sets the renderer for the schematic draw list.
func WithSchematicRenderer(r SchematicRenderer) SceneOption {
	return func(s *Scene) { s.schematic = r }
}

// WithWaveRenderer sets the realtime view renderer.
func WithWaveRenderer(r WaveRenderer) SceneOption {
	return func(s *Scene) { s.wave = r }
}

// WithRedraw sets a callback invoked after every drag step has been applied
// and the schematic shapes were updated.
func WithRedraw(fn func()) SceneOption {
	return func(s *Scene) { s.redraw = fn }
}

// WithLogger sets the scene logger.
func WithLogger(l *log.Logger) SceneOption {
	return func(s *Scene) { s.logger = l }
}

// WithClockStart sets the time at which the animation phase is zero.
func WithClockStart(t time.Time) SceneOption {
	return func(s *Scene) { s.clock = NewPhaseClock(t) }
}

// NewScene creates a scene for the given layer count and geometry.
func NewScene(layers int, geom Geometry, opts ...SceneOption) (*Scene, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	model, err := NewBoundaryModel(layers, geom.Width)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		geom:    geom,
		model:   model,
		view:    NewSchematicView(layers, geom),
		logger:  log.New(io.Discard),
		actions: NewActionRegistry(),
	}
	s.actions.Register("pause", KeySpace, func() { s.TogglePause(s.now) })
	s.actions.RegisterWithCondition("reset", KeyR, s.ResetBoundaries, func() bool { return !s.drag.IsDragging() })
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewPhaseClock(time.Now())
	}
	s.bindDrag()

	return s, nil
}

func (s *Scene) bindDrag() {
	move := BindBoundaryDrag(s.model, s.Viewport, s.redrawSchematic)
	s.drag = NewHandleDrag(move)
	s.drag.OnStart(func(i int) {
		s.logger.Debug("drag start", "boundary", i, "value", s.model.Boundary(i))
	})
	s.drag.OnEnd(func(i int) {
		s.logger.Debug("drag end", "boundary", i, "value", s.model.Boundary(i))
	})
}

// Actions returns the key bindings handled at the start of every frame.
// Callers may register their own, e.g. quitting on KeyEscape.
func (s *Scene) Actions() *ActionRegistry { return s.actions }

// Model returns the boundary model.
func (s *Scene) Model() *BoundaryModel { return s.model }

// View returns the schematic view.
func (s *Scene) View() *SchematicView { return s.view }

// Geometry returns the scene geometry.
func (s *Scene) Geometry() Geometry { return s.geom }

// Viewport returns the schematic viewport of the current frame.
func (s *Scene) Viewport() Viewport { return s.viewport }

// Frames returns the number of frames drawn.
func (s *Scene) Frames() uint64 { return s.frames }

// Paused reports whether the animation is paused.
func (s *Scene) Paused() bool { return s.paused }

// Dragging reports whether a handle is being dragged.
func (s *Scene) Dragging() bool { return s.drag.IsDragging() }

// redrawSchematic updates the schematic shapes from the model.
func (s *Scene) redrawSchematic() {
	s.view.Render(s.model.Boundaries(), s.viewport)
	s.drawnThisTick = true
	if s.redraw != nil {
		s.redraw()
	}
}

// Phase returns the animation phase at now, frozen while paused.
func (s *Scene) Phase(now time.Time) float32 {
	if s.paused {
		return s.pausedPhase
	}
	return s.clock.Phase(now)
}

// TogglePause freezes or resumes the animation at now. Resuming continues
// from the frozen phase.
func (s *Scene) TogglePause(now time.Time) {
	if !s.paused {
		s.pausedPhase = s.clock.Phase(now)
		s.paused = true
		return
	}
	offset := time.Duration(float64(s.pausedPhase) / PhaseRate * float64(time.Second))
	s.clock = NewPhaseClock(now.Add(-offset))
	s.paused = false
}

// ResetBoundaries spaces the boundaries evenly again.
func (s *Scene) ResetBoundaries() {
	fresh, err := NewBoundaryModel(s.model.Layers(), s.model.Width())
	if err != nil {
		return
	}
	// Same layer count and width, cannot fail validation.
	_ = s.model.SetBoundaries(fresh.Boundaries())
	s.logger.Debug("boundaries reset", "layers", s.model.Layers())
}

// Apply replaces geometry, layer count and boundaries from cfg.
// The schematic view and model are rebuilt; an active drag is cancelled.
func (s *Scene) Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	model, err := cfg.BoundaryModel()
	if err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	s.drag.Cancel()
	s.geom = cfg.Geometry
	s.model = model
	s.view = NewSchematicView(cfg.Layers, cfg.Geometry)
	s.bindDrag()

	s.logger.Info("scene rebuilt", "layers", cfg.Layers, "width", cfg.Geometry.Width)
	return nil
}

// Frame runs one frame: input, boundary mutation, schematic redraw and
// realtime redraw, in that order.
func (s *Scene) Frame(input *InputState, vp Viewport, now time.Time) error {
	s.viewport = vp
	s.now = now
	s.drawnThisTick = false

	for _, name := range s.actions.HandleActions(input) {
		s.logger.Debug("action", "name", name)
	}

	s.drag.Update(input, s.view)

	if !s.drawnThisTick {
		s.view.Render(s.model.Boundaries(), vp)
	}

	if s.schematic != nil {
		dl := AcquireDrawList()
		b := vp.Bounds()
		dl.PushClipRect(b.X, b.Y, b.X+b.W, b.Y+b.H)
		s.view.Draw(dl)
		dl.PopClipRect()
		err := s.schematic.Render(dl)
		ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render schematic: %w", err)
		}
	}

	if s.wave != nil {
		if err := s.wave.Render(s.model.Centered(), s.geom.Height, s.geom.SchematicWidth, s.Phase(now)); err != nil {
			return fmt.Errorf("render wave: %w", err)
		}
	}

	s.frames++
	return nil
}
