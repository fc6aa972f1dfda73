package waveguide

// DragHandler receives the pixel movement of one drag step for a handle.
type DragHandler func(index int, deltaX, deltaY float32)

// DragState tracks the state of a drag operation on a schematic handle.
type DragState struct {
	Active bool    // Currently being dragged
	Index  int     // Handle being dragged
	LastX  float32 // Mouse X at the previous step
	LastY  float32 // Mouse Y at the previous step
}

// Reset clears the drag state.
func (d *DragState) Reset() {
	d.Active = false
	d.Index = -1
	d.LastX = 0
	d.LastY = 0
}

// HandleDrag turns per-frame mouse input into incremental drag deltas for
// the handles of a SchematicView. At most one handle is dragged at a time.
type HandleDrag struct {
	state   DragState
	onDrag  DragHandler
	onStart func(index int)
	onEnd   func(index int)
}

// NewHandleDrag creates a drag tracker that reports steps to onDrag.
func NewHandleDrag(onDrag DragHandler) *HandleDrag {
	hd := &HandleDrag{onDrag: onDrag}
	hd.state.Reset()
	return hd
}

// OnStart registers a callback for the start of a drag.
func (hd *HandleDrag) OnStart(fn func(index int)) { hd.onStart = fn }

// OnEnd registers a callback for the end of a drag.
func (hd *HandleDrag) OnEnd(fn func(index int)) { hd.onEnd = fn }

// State returns a copy of the current drag state.
func (hd *HandleDrag) State() DragState {
	return hd.state
}

// IsDragging returns true if a handle is currently being dragged.
func (hd *HandleDrag) IsDragging() bool {
	return hd.state.Active
}

// Update processes this frame's input against view.
// Call it once per frame before the view is redrawn.
// Returns true if a handle is being dragged after the update.
func (hd *HandleDrag) Update(input *InputState, view *SchematicView) bool {
	if input == nil || view == nil {
		return hd.state.Active
	}

	mouse := input.MousePos()

	// A press over a draggable handle starts a gesture. Endpoints never do.
	if !hd.state.Active && input.MouseClicked(MouseButtonLeft) {
		if i, ok := view.DraggableHandleAt(mouse); ok {
			hd.state = DragState{Active: true, Index: i, LastX: mouse.X, LastY: mouse.Y}
			if hd.onStart != nil {
				hd.onStart(i)
			}
		}
		return hd.state.Active
	}

	if !hd.state.Active {
		return false
	}

	if !input.MouseDown(MouseButtonLeft) {
		hd.end()
		return false
	}

	dx := mouse.X - hd.state.LastX
	dy := mouse.Y - hd.state.LastY
	hd.state.LastX = mouse.X
	hd.state.LastY = mouse.Y

	if (dx != 0 || dy != 0) && hd.onDrag != nil {
		hd.onDrag(hd.state.Index, dx, dy)
	}
	return true
}

// Cancel ends an active drag without further steps.
func (hd *HandleDrag) Cancel() {
	hd.end()
}

func (hd *HandleDrag) end() {
	if !hd.state.Active {
		return
	}
	idx := hd.state.Index
	hd.state.Reset()
	if hd.onEnd != nil {
		hd.onEnd(idx)
	}
}

// BindBoundaryDrag returns a DragHandler that moves the dragged boundary of
// model by the horizontal delta, rescaled through the viewport returned by
// viewport at the time of the step, and then calls redraw.
// The vertical delta is ignored.
func BindBoundaryDrag(model *BoundaryModel, viewport func() Viewport, redraw func()) DragHandler {
	return func(index int, dx, _ float32) {
		model.Adjust(index, dx, viewport())
		if redraw != nil {
			redraw()
		}
	}
}
