package editor

import "sync"

// PointerHandler consumes pointer events for one mode
type PointerHandler interface {
	HandlePointer(ev PointerEvent)
}

// PointerHandlerFunc adapts a function to PointerHandler
type PointerHandlerFunc func(ev PointerEvent)

// HandlePointer calls f(ev)
func (f PointerHandlerFunc) HandlePointer(ev PointerEvent) { f(ev) }

// Router is the single owner of pointer and key input. Pointer events go to
// the handler registered for the active mode only; key bindings apply in every mode.
type Router struct {
	mu       sync.Mutex
	mode     Mode
	handlers map[Mode]PointerHandler
	bindings map[KeyChord]func()
}

// NewRouter creates an empty router in ModeIdle
func NewRouter() *Router {
	return &Router{
		mode:     ModeIdle,
		handlers: make(map[Mode]PointerHandler),
		bindings: make(map[KeyChord]func()),
	}
}

// Register sets the pointer handler for a mode, replacing any previous one.
// A nil handler leaves the mode without pointer input.
func (r *Router) Register(mode Mode, h PointerHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h == nil {
		delete(r.handlers, mode)
		return
	}
	r.handlers[mode] = h
}

// SetMode switches the active handler set
func (r *Router) SetMode(mode Mode) {
	r.mu.Lock()
	r.mode = mode
	r.mu.Unlock()
}

// ActiveMode returns the mode whose handler receives pointer events
func (r *Router) ActiveMode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Dispatch hands the event to the active handler. It reports false when
// the active mode has no handler. The handler runs without the lock held
// so it may switch modes.
func (r *Router) Dispatch(ev PointerEvent) bool {
	r.mu.Lock()
	h := r.handlers[r.mode]
	r.mu.Unlock()

	if h == nil {
		return false
	}
	h.HandlePointer(ev)
	return true
}

// Bind registers fn for a key chord
func (r *Router) Bind(chord KeyChord, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[chord] = fn
}

// DispatchKey runs the binding for the key, if any
func (r *Router) DispatchKey(ev KeyEvent) KeyResult {
	r.mu.Lock()
	fn := r.bindings[ev.chord()]
	r.mu.Unlock()

	if fn == nil {
		return KeyResult{}
	}
	fn()
	return KeyResult{Handled: true}
}
