package action

// Event is an activation event delivered to a pressable control. Controls
// suppress every event they receive before running any handler, so a press
// never falls through to an enclosing target.
type Event struct {
	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent returns a fresh, unsuppressed event.
func NewEvent() *Event {
	return &Event{}
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() {
	if e != nil {
		e.defaultPrevented = true
	}
}

// StopPropagation prevents enclosing targets from seeing the event.
func (e *Event) StopPropagation() {
	if e != nil {
		e.propagationStopped = true
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e != nil && e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e != nil && e.propagationStopped
}

// Suppress cancels both the default action and propagation.
func (e *Event) Suppress() {
	e.StopPropagation()
	e.PreventDefault()
}
