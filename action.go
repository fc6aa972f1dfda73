package waveguide

// ActionHandler is called when an action's key is pressed.
type ActionHandler func()

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// ActionEntry holds a registered action with its key and handler.
type ActionEntry struct {
	Name      string          // Action name for logging
	Key       Key             // Key that triggers the action
	Handler   ActionHandler   // Called when the key is pressed
	Condition ActionCondition // Optional: must return true to execute (nil = always)
}

// ActionRegistry maps key presses to viewer actions.
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make([]ActionEntry, 0, 4)}
}

// Register adds an action triggered by key.
func (r *ActionRegistry) Register(name string, key Key, handler ActionHandler) {
	r.RegisterWithCondition(name, key, handler, nil)
}

// RegisterWithCondition adds an action with a condition that must be true to execute.
// An action registered under an existing name replaces it.
func (r *ActionRegistry) RegisterWithCondition(name string, key Key, handler ActionHandler, condition ActionCondition) {
	r.Unregister(name)
	r.actions = append(r.actions, ActionEntry{
		Name:      name,
		Key:       key,
		Handler:   handler,
		Condition: condition,
	})
}

// HandleActions runs every action whose key was pressed this frame, in
// registration order, and returns their names.
func (r *ActionRegistry) HandleActions(input *InputState) []string {
	if input == nil {
		return nil
	}
	var fired []string
	for i := range r.actions {
		a := &r.actions[i]
		if a.Handler == nil || !input.KeyPressed(a.Key) {
			continue
		}
		if a.Condition != nil && !a.Condition() {
			continue
		}
		a.Handler()
		fired = append(fired, a.Name)
	}
	return fired
}

// Actions returns the registered actions.
func (r *ActionRegistry) Actions() []ActionEntry {
	return r.actions
}

// Unregister removes an action by name.
func (r *ActionRegistry) Unregister(name string) {
	for i, a := range r.actions {
		if a.Name == name {
			r.actions = append(r.actions[:i], r.actions[i+1:]...)
			return
		}
	}
}

// Clear removes all registered actions.
func (r *ActionRegistry) Clear() {
	r.actions = r.actions[:0]
}
