package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

// tileLayout staggers the four showcase tiles into a masonry-like grid.
var tileLayout = []string{"h-64", "h-48 mt-16", "h-48", "h-64 -mt-16"}

func TechnologySection(tech content.Technology) g.Node {
	return Section(
		ID("tech"),
		Class("py-20 bg-white"),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("flex flex-col md:flex-row items-center gap-12"),

				Div(
					Class("md:w-1/2"),
					Div(
						Class("inline-block bg-blue-100 text-blue-800 px-4 py-1 rounded-full text-sm font-semibold mb-6"),
						g.Text(tech.Badge),
					),
					sectionHeading("text-3xl md:text-4xl font-bold text-gray-900 mb-6", tech.Heading),
					P(Class("text-gray-600 text-lg mb-8 leading-relaxed"), g.Text(tech.Intro)),

					Div(
						Class("space-y-6"),
						g.Group(g.Map(tech.Highlights, func(h content.Highlight) g.Node {
							return Div(
								Class("flex gap-4"),
								IconBadge(h.Icon, h.Color),
								Div(
									H4(Class("font-bold text-gray-900"), g.Text(h.Title)),
									P(Class("text-gray-600"), g.Text(h.Description)),
								),
							)
						})),
					),

					Div(
						Class("mt-10 p-6 bg-gray-50 rounded-xl border border-gray-100"),
						P(Class("text-sm text-gray-500 mb-2 font-semibold uppercase"), g.Text("Ecosystem Partners")),
						Div(
							Class("flex flex-wrap gap-4 font-bold text-gray-400"),
							g.Group(partnerList(tech.Partners)),
						),
					),
				),

				Div(
					Class("md:w-1/2 grid grid-cols-2 gap-4"),
					g.Group(mapIndexed(tech.Tiles, func(i int, t content.Tile) g.Node {
						return Div(
							Class("bg-gray-100 "+tileLayout[i%len(tileLayout)]+" rounded-2xl p-6 flex flex-col justify-end relative overflow-hidden group"),
							Div(Class("absolute inset-0 bg-gradient-to-t from-black/60 to-transparent z-10")),
							Img(
								Src(t.ImageURL),
								Alt(t.Alt),
								Class("absolute inset-0 w-full h-full object-cover transition-transform duration-500 group-hover:scale-110"),
							),
							Span(Class("relative z-20 text-white font-bold"), g.Text(t.Label)),
						)
					})),
				),
			),
		),
	)
}

// partnerList separates partner names with bullets.
func partnerList(partners []string) []g.Node {
	nodes := make([]g.Node, 0, 2*len(partners))
	for i, p := range partners {
		if i > 0 {
			nodes = append(nodes, g.Text("•"))
		}
		nodes = append(nodes, Span(g.Text(p)))
	}
	return nodes
}

func mapIndexed[T any](ts []T, cb func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, cb(i, t))
	}
	return nodes
}
