package navstate

import "sync"

// Window is an in-process ScrollSource. Dispatch delivers an offset to every
// listener registered at the time of the call.
type Window struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(float64)
	offset    float64
}

func NewWindow() *Window {
	return &Window{listeners: make(map[int]func(float64))}
}

func (w *Window) Subscribe(fn func(offset float64)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.listeners, id)
			w.mu.Unlock()
		})
	}
}

func (w *Window) Dispatch(offset float64) {
	w.mu.Lock()
	w.offset = offset
	fns := make([]func(float64), 0, len(w.listeners))
	for _, fn := range w.listeners {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(offset)
	}
}

// Listeners reports how many listeners are registered.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Offset is the last dispatched offset.
func (w *Window) Offset() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.offset
}
