package navstate

// Styles is the set of utility classes that differ between variants.
type Styles struct {
	Header string
	Brand  string
	Link   string
	Icon   string
}

var variantStyles = map[Variant]Styles{
	Transparent: {
		Header: "bg-transparent py-6",
		Brand:  "text-white",
		Link:   "text-gray-200",
		Icon:   "text-white",
	},
	Solid: {
		Header: "bg-white/95 backdrop-blur-sm shadow-lg py-4",
		Brand:  "text-gray-900",
		Link:   "text-gray-600",
		Icon:   "text-gray-900",
	},
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Transparent, Solid}
}

// StylesFor returns the class set for v, falling back to Transparent for an
// unknown variant.
func StylesFor(v Variant) Styles {
	if s, ok := variantStyles[v]; ok {
		return s
	}
	return variantStyles[Transparent]
}
