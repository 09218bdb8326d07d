package navstate

import "sync"

// ScrollSource delivers vertical scroll offsets. Subscribe returns the
// function that removes the listener.
type ScrollSource interface {
	Subscribe(fn func(offset float64)) (unsubscribe func())
}

// Bar is the navigation bar controller. The zero value is unmounted and in
// the initial state.
type Bar struct {
	mu          sync.Mutex
	state       State
	unsubscribe func()
	mounting    bool
	pending     *float64
	onChange    func(State)
}

// NewBar returns a bar that calls onChange after every transition that
// changes the state. onChange may be nil.
func NewBar(onChange func(State)) *Bar {
	return &Bar{state: Initial(), onChange: onChange}
}

// Mount resets the bar to Initial and registers a single scroll listener.
// An offset the source reports while subscribing is applied once Mount
// completes. Mount fails with ErrAlreadyMounted while another Mount is in
// progress or the bar is already mounted.
func (b *Bar) Mount(src ScrollSource) error {
	b.mu.Lock()
	if b.mounting || b.unsubscribe != nil {
		b.mu.Unlock()
		return ErrAlreadyMounted
	}
	b.mounting = true
	b.pending = nil
	b.state = Initial()
	b.mu.Unlock()

	unsub := src.Subscribe(b.handleScroll)

	b.mu.Lock()
	b.mounting = false
	b.unsubscribe = unsub
	next, changed := b.state, false
	if b.pending != nil {
		next, changed = b.applyLocked(withVariant(VariantFor(*b.pending)))
		b.pending = nil
	}
	b.mu.Unlock()

	b.notify(next, changed)
	return nil
}

// Unmount removes the scroll listener. Calling it on an unmounted bar is a
// no-op.
func (b *Bar) Unmount() {
	b.mu.Lock()
	unsub := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// Mounted reports whether a scroll listener is registered.
func (b *Bar) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unsubscribe != nil
}

// State returns the current state.
func (b *Bar) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// ToggleMenu flips the menu between closed and open.
func (b *Bar) ToggleMenu() {
	b.update(func(s State) State {
		if s.Menu == Open {
			s.Menu = Closed
		} else {
			s.Menu = Open
		}
		return s
	})
}

// SelectLink closes an open menu. The href is not inspected: every link in
// the panel, the call to action included, closes it.
func (b *Bar) SelectLink(href string) {
	b.update(func(s State) State {
		s.Menu = Closed
		return s
	})
}

func (b *Bar) handleScroll(offset float64) {
	b.mu.Lock()
	if b.mounting {
		b.pending = &offset
		b.mu.Unlock()
		return
	}
	if b.unsubscribe == nil {
		b.mu.Unlock()
		return
	}
	next, changed := b.applyLocked(withVariant(VariantFor(offset)))
	b.mu.Unlock()

	b.notify(next, changed)
}

func (b *Bar) update(fn func(State) State) {
	b.mu.Lock()
	next, changed := b.applyLocked(fn)
	b.mu.Unlock()

	b.notify(next, changed)
}

// applyLocked must be called with b.mu held.
func (b *Bar) applyLocked(fn func(State) State) (State, bool) {
	prev := b.state
	b.state = fn(prev)
	return b.state, b.state != prev
}

func (b *Bar) notify(s State, changed bool) {
	if changed && b.onChange != nil {
		b.onChange(s)
	}
}

func withVariant(v Variant) func(State) State {
	return func(s State) State {
		s.Variant = v
		return s
	}
}
