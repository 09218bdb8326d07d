// Package navstate models the navigation bar's two pieces of local UI state:
// the style variant driven by scroll position and the mobile menu toggle.
package navstate

import "errors"

// ScrollThreshold is the vertical offset, in CSS pixels, above which the
// header switches to its solid variant.
const ScrollThreshold = 50

type Variant int

const (
	Transparent Variant = iota
	Solid
)

func (v Variant) String() string {
	switch v {
	case Solid:
		return "solid"
	default:
		return "transparent"
	}
}

// VariantFor returns Solid iff offset is strictly greater than ScrollThreshold.
func VariantFor(offset float64) Variant {
	if offset > ScrollThreshold {
		return Solid
	}
	return Transparent
}

type Menu int

const (
	Closed Menu = iota
	Open
)

func (m Menu) String() string {
	if m == Open {
		return "open"
	}
	return "closed"
}

type State struct {
	Menu    Menu
	Variant Variant
}

// Initial is the state of a freshly mounted bar.
func Initial() State {
	return State{Menu: Closed, Variant: Transparent}
}

var ErrAlreadyMounted = errors.New("navigation bar already mounted")
