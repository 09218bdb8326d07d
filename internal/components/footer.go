package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

func PageFooter(brand string, f content.Footer, year int) g.Node {
	return Footer(
		Class("bg-gray-900 text-gray-400 py-12 border-t border-gray-800"),

		Div(
			Class("container mx-auto px-6 grid md:grid-cols-4 gap-8"),

			Div(
				Class("col-span-1 md:col-span-2"),
				Div(
					Class("flex items-center gap-2 mb-4"),
					Div(
						Class("w-8 h-8 bg-green-600 rounded flex items-center justify-center"),
						Icon("lucide--leaf text-white w-5 h-5", ""),
					),
					Span(Class("text-xl font-bold text-white"), g.Text(brand)),
				),
				P(Class("text-sm leading-relaxed max-w-xs"), g.Text(f.Blurb)),
			),

			Div(
				H4(Class("text-white font-bold mb-4"), g.Text("Quick Links")),
				Ul(
					Class("space-y-2 text-sm"),
					g.Group(g.Map(f.QuickLinks, func(l content.NavLink) g.Node {
						return Li(A(Href(l.Href), Class("hover:text-green-500 transition-colors"), g.Text(l.Name)))
					})),
				),
			),

			Div(
				H4(Class("text-white font-bold mb-4"), g.Text("Location")),
				g.El("address",
					Class("not-italic text-sm space-y-2"),
					g.Group(g.Map(f.Address, func(line string) g.Node {
						return P(g.Text(line))
					})),
					g.If(f.Landmark != "", P(Class("pt-2 text-green-500"), g.Text(f.Landmark))),
				),
			),
		),

		Div(
			Class("container mx-auto px-6 mt-12 pt-8 border-t border-gray-800 text-center text-xs"),
			g.Text(fmt.Sprintf("© %d %s. %s", year, brand, f.Tagline)),
		),
	)
}
