package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

// ProductCard renders one catalog entry. Fields are trusted as authored and
// features keep their given order.
func ProductCard(p content.Product) g.Node {
	return Div(
		Class("bg-white rounded-2xl overflow-hidden shadow-lg border border-gray-100 hover:shadow-2xl transition-all duration-300 group"),
		g.Attr("data-product", ""),

		Div(
			Class("h-64 overflow-hidden relative"),
			Div(
				Class("absolute top-4 left-4 bg-white/90 backdrop-blur px-3 py-1 rounded-full text-xs font-bold uppercase tracking-wider text-gray-800 z-10"),
				g.Text(p.Category),
			),
			Img(
				Src(p.ImageURL),
				Alt(p.Title),
				Class("w-full h-full object-cover transition-transform duration-500 group-hover:scale-110"),
			),
			Div(
				Class("absolute inset-0 bg-gradient-to-t from-black/70 to-transparent opacity-0 group-hover:opacity-100 transition-opacity duration-300 flex items-end p-6"),
				Span(
					Class("text-white font-semibold flex items-center gap-2"),
					g.Text("View Specifications"),
					Icon("lucide--arrow-right w-4 h-4", ""),
				),
			),
		),

		Div(
			Class("p-8"),
			H3(Class("text-2xl font-bold text-gray-900 mb-3"), g.Text(p.Title)),
			P(Class("text-gray-600 mb-6"), g.Text(p.Description)),
			Ul(
				Class("space-y-3"),
				g.Group(g.Map(p.Features, func(feature string) g.Node {
					return Li(
						Class("flex items-start gap-2 text-sm text-gray-700"),
						checkIcon("w-5 h-5 text-green-500 shrink-0"),
						g.Text(feature),
					)
				})),
			),
		),
	)
}

func ProductCatalog(catalog content.Catalog) g.Node {
	return Section(
		ID("products"),
		Class("py-20 bg-green-900"),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("text-center mb-16"),
				Span(Class("text-green-300 font-bold uppercase tracking-widest text-sm"), g.Text(catalog.Eyebrow)),
				sectionHeading("text-3xl md:text-5xl font-bold text-white mt-2 mb-6", catalog.Heading),
				P(Class("text-gray-300 max-w-2xl mx-auto text-lg"), g.Text(catalog.Intro)),
			),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(catalog.Products, ProductCard)),
			),
		),
	)
}
