package components

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
	"github.com/sekammas/sekammas/apps/website/internal/navstate"
)

// variantClasses serializes the per-variant class sets for the client
// script, keyed by variant name then role.
func variantClasses() string {
	out := make(map[string]map[string]string, len(navstate.Variants()))
	for _, v := range navstate.Variants() {
		s := navstate.StylesFor(v)
		out[v.String()] = map[string]string{
			"header": s.Header,
			"brand":  s.Brand,
			"link":   s.Link,
			"icon":   s.Icon,
		}
	}
	b, _ := json.Marshal(out)
	return string(b)
}

// NavigationBar renders the fixed header in the given state. The client
// script takes over from this initial rendering.
func NavigationBar(brand, accent string, links content.Navigation, state navstate.State) g.Node {
	styles := navstate.StylesFor(state.Variant)
	open := state.Menu == navstate.Open

	return Nav(
		ID("site-nav"),
		Class("fixed w-full z-50 transition-all duration-300 "+styles.Header),
		g.Attr("data-nav-role", "header"),
		g.Attr("data-variant", state.Variant.String()),
		g.Attr("data-menu", state.Menu.String()),
		g.Attr("data-scroll-threshold", strconv.Itoa(navstate.ScrollThreshold)),
		g.Attr("data-variant-classes", variantClasses()),

		Div(
			Class("container mx-auto px-6 flex justify-between items-center"),
			Logo(brand, accent, styles.Brand),

			Div(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(links.Links, func(l content.NavLink) g.Node {
					return A(
						Href(l.Href),
						Class("font-medium text-sm uppercase tracking-wider hover:text-yellow-500 transition-colors "+styles.Link),
						g.Attr("data-nav-role", "link"),
						g.Text(l.Name),
					)
				})),
				A(
					Href(links.DesktopCTA.Href),
					Class("bg-green-600 hover:bg-green-700 text-white px-6 py-2 rounded-full font-semibold transition-all transform hover:scale-105 flex items-center gap-2"),
					g.Text(links.DesktopCTA.Name),
				),
			),

			Button(
				Type("button"),
				Class("md:hidden"),
				g.Attr("data-nav-toggle", ""),
				g.Attr("aria-controls", "mobile-menu"),
				g.Attr("aria-expanded", strconv.FormatBool(open)),
				g.Attr("aria-label", "Toggle menu"),
				Span(
					Class(styles.Icon),
					g.Attr("data-nav-role", "icon"),
					g.Attr("data-menu-icon", "closed"),
					g.If(open, g.Attr("hidden", "")),
					Icon("lucide--menu w-6 h-6", ""),
				),
				Span(
					Class(styles.Icon),
					g.Attr("data-nav-role", "icon"),
					g.Attr("data-menu-icon", "open"),
					g.If(!open, g.Attr("hidden", "")),
					Icon("lucide--x w-6 h-6", ""),
				),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("md:hidden absolute top-full left-0 w-full bg-white shadow-xl border-t border-gray-100"),
			g.If(!open, g.Attr("hidden", "")),
			Div(
				Class("flex flex-col p-6 gap-4"),
				g.Group(g.Map(links.Links, func(l content.NavLink) g.Node {
					return A(
						Href(l.Href),
						Class("text-gray-800 font-medium py-2 border-b border-gray-100"),
						g.Attr("data-nav-close", ""),
						g.Text(l.Name),
					)
				})),
				A(
					Href(links.MobileCTA.Href),
					Class("bg-green-600 text-center text-white py-3 rounded-lg font-bold"),
					g.Attr("data-nav-close", ""),
					g.Text(links.MobileCTA.Name),
				),
			),
		),
	)
}
