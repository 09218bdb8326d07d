package navstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

func TestVariantFor(t *testing.T) {
	tests := []struct {
		offset float64
		want   Variant
	}{
		{-10, Transparent},
		{0, Transparent},
		{49.9, Transparent},
		{50, Transparent},
		{50.5, Solid},
		{51, Solid},
		{4000, Solid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VariantFor(tt.offset), "offset %v", tt.offset)
	}
}

func TestVariantForIsStateless(t *testing.T) {
	for _, o := range []float64{51, 50, 51, 0, 51} {
		assert.Equal(t, VariantFor(o), VariantFor(o))
	}
	assert.Equal(t, Transparent, VariantFor(50))
}

func TestInitialState(t *testing.T) {
	assert.Equal(t, State{Menu: Closed, Variant: Transparent}, Initial())
	assert.Equal(t, Initial(), NewBar(nil).State())

	var zero Bar
	assert.Equal(t, Initial(), zero.State())
}

func TestToggleMenuRoundTrip(t *testing.T) {
	bar := NewBar(nil)
	bar.ToggleMenu()
	assert.Equal(t, Open, bar.State().Menu)
	bar.ToggleMenu()
	assert.Equal(t, Closed, bar.State().Menu)
}

func TestSelectLinkClosesOpenMenu(t *testing.T) {
	site := content.Default()
	links := append(append([]content.NavLink{}, site.Nav.Links...), site.Nav.MobileCTA)
	require.Len(t, links, 6)

	for _, l := range links {
		t.Run(l.Name, func(t *testing.T) {
			bar := NewBar(nil)
			bar.ToggleMenu()
			require.Equal(t, Open, bar.State().Menu)

			bar.SelectLink(l.Href)
			assert.Equal(t, Closed, bar.State().Menu)
		})
	}
}

func TestSelectLinkWhileClosed(t *testing.T) {
	var changes int
	bar := NewBar(func(State) { changes++ })
	bar.SelectLink("#products")
	assert.Equal(t, Closed, bar.State().Menu)
	assert.Zero(t, changes)
}

func TestScrollDrivesVariant(t *testing.T) {
	win := NewWindow()
	var seen []State
	bar := NewBar(func(s State) { seen = append(seen, s) })
	require.NoError(t, bar.Mount(win))

	win.Dispatch(10)
	assert.Equal(t, Transparent, bar.State().Variant)
	win.Dispatch(51)
	assert.Equal(t, Solid, bar.State().Variant)
	win.Dispatch(300)
	win.Dispatch(50)
	assert.Equal(t, Transparent, bar.State().Variant)

	// only actual transitions are reported
	assert.Equal(t, []State{
		{Menu: Closed, Variant: Solid},
		{Menu: Closed, Variant: Transparent},
	}, seen)
}

func TestMenuAndVariantAreIndependent(t *testing.T) {
	win := NewWindow()
	bar := NewBar(nil)
	require.NoError(t, bar.Mount(win))

	bar.ToggleMenu()
	win.Dispatch(120)
	assert.Equal(t, State{Menu: Open, Variant: Solid}, bar.State())

	bar.SelectLink("#founder")
	assert.Equal(t, State{Menu: Closed, Variant: Solid}, bar.State())
}

func TestMountRegistersExactlyOnce(t *testing.T) {
	win := NewWindow()
	bar := NewBar(nil)

	require.NoError(t, bar.Mount(win))
	assert.Equal(t, 1, win.Listeners())
	assert.ErrorIs(t, bar.Mount(win), ErrAlreadyMounted)
	assert.Equal(t, 1, win.Listeners())
	assert.True(t, bar.Mounted())
}

func TestUnmountRemovesListener(t *testing.T) {
	win := NewWindow()
	var changes int
	bar := NewBar(func(State) { changes++ })
	require.NoError(t, bar.Mount(win))

	bar.Unmount()
	assert.Zero(t, win.Listeners())
	assert.False(t, bar.Mounted())

	win.Dispatch(500)
	assert.Equal(t, Transparent, bar.State().Variant)
	assert.Zero(t, changes)

	bar.Unmount()
	assert.Zero(t, win.Listeners())
}

func TestRemountResetsState(t *testing.T) {
	win := NewWindow()
	bar := NewBar(nil)
	require.NoError(t, bar.Mount(win))
	bar.ToggleMenu()
	win.Dispatch(90)
	bar.Unmount()

	require.NoError(t, bar.Mount(win))
	assert.Equal(t, Initial(), bar.State())
	assert.Equal(t, 1, win.Listeners())
}

func TestWindowUnsubscribeIsIdempotent(t *testing.T) {
	win := NewWindow()
	a := win.Subscribe(func(float64) {})
	win.Subscribe(func(float64) {})
	a()
	a()
	assert.Equal(t, 1, win.Listeners())

	win.Dispatch(42)
	assert.Equal(t, 42.0, win.Offset())
}

func TestStylesFor(t *testing.T) {
	for _, v := range Variants() {
		s := StylesFor(v)
		assert.NotEmpty(t, s.Header, v.String())
		assert.NotEmpty(t, s.Brand, v.String())
	}
	assert.NotEqual(t, StylesFor(Transparent), StylesFor(Solid))
	assert.Equal(t, StylesFor(Transparent), StylesFor(Variant(7)))
	assert.Equal(t, "solid", Solid.String())
	assert.Equal(t, "open", Open.String())
}

// gatedSource blocks inside Subscribe until release is closed.
type gatedSource struct {
	win     *Window
	entered chan struct{}
	release chan struct{}
}

func (s *gatedSource) Subscribe(fn func(float64)) func() {
	s.entered <- struct{}{}
	<-s.release
	return s.win.Subscribe(fn)
}

func TestOverlappingMountRegistersOnce(t *testing.T) {
	src := &gatedSource{
		win:     NewWindow(),
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	bar := NewBar(nil)

	first := make(chan error, 1)
	go func() { first <- bar.Mount(src) }()
	<-src.entered

	second := make(chan error, 1)
	go func() { second <- bar.Mount(src) }()
	select {
	case err := <-second:
		assert.ErrorIs(t, err, ErrAlreadyMounted)
	case <-time.After(time.Second):
		close(src.release)
		t.Fatal("second Mount subscribed while the first was in progress")
	}

	close(src.release)
	require.NoError(t, <-first)
	assert.Equal(t, 1, src.win.Listeners())

	bar.Unmount()
	assert.Zero(t, src.win.Listeners())
}

// eagerSource reports its current offset from inside Subscribe.
type eagerSource struct {
	win    *Window
	offset float64
}

func (s *eagerSource) Subscribe(fn func(float64)) func() {
	unsub := s.win.Subscribe(fn)
	fn(s.offset)
	return unsub
}

func TestMountAppliesOffsetReportedDuringSubscribe(t *testing.T) {
	var seen []State
	bar := NewBar(func(s State) { seen = append(seen, s) })
	require.NoError(t, bar.Mount(&eagerSource{win: NewWindow(), offset: 400}))

	assert.Equal(t, State{Menu: Closed, Variant: Solid}, bar.State())
	assert.Equal(t, []State{{Menu: Closed, Variant: Solid}}, seen)
	assert.True(t, bar.Mounted())
}

func TestMountIgnoresLowOffsetReportedDuringSubscribe(t *testing.T) {
	var changes int
	bar := NewBar(func(State) { changes++ })
	require.NoError(t, bar.Mount(&eagerSource{win: NewWindow(), offset: 50}))

	assert.Equal(t, Initial(), bar.State())
	assert.Zero(t, changes)
}
