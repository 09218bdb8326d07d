package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

// ProblemSolutionSection renders the status quo and solution columns from
// the same slice, so row i of each column comes from items[i].
func ProblemSolutionSection(ps content.ProblemSolution) g.Node {
	return Section(
		ID("solutions"),
		Class("py-20 bg-gray-50"),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("text-center max-w-3xl mx-auto mb-16"),
				sectionHeading("text-3xl md:text-4xl font-bold text-gray-900 mb-4", ps.Heading),
				P(Class("text-gray-600 text-lg"), g.Text(ps.Intro)),
			),

			Div(
				Class("grid md:grid-cols-2 gap-8"),

				Div(
					Class("bg-white p-8 rounded-2xl shadow-sm border border-red-100"),
					g.Attr("data-column", "status-quo"),
					Div(
						Class("flex items-center gap-3 mb-6"),
						Div(Class("bg-red-100 p-3 rounded-full"), Icon("lucide--alert-triangle text-red-600 w-6 h-6", "")),
						H3(Class("text-2xl font-bold text-gray-800"), g.Text(ps.StatusQuoTitle)),
					),
					Div(
						Class("space-y-6"),
						g.Group(g.Map(ps.Items, func(it content.ComparisonItem) g.Node {
							return Div(
								Class("flex items-center justify-between p-4 bg-red-50/50 rounded-lg"),
								g.Attr("data-row", ""),
								Span(Class("text-gray-700 font-medium"), g.Text(it.Problem)),
								Icon("lucide--x text-red-400 w-5 h-5", ""),
							)
						})),
					),
				),

				Div(
					Class("bg-gray-900 p-8 rounded-2xl shadow-xl transform md:-translate-y-4 md:scale-105 transition-transform"),
					g.Attr("data-column", "solution"),
					Div(
						Class("flex items-center gap-3 mb-6"),
						Div(Class("bg-green-500 p-3 rounded-full"), checkIcon("text-white w-6 h-6")),
						H3(Class("text-2xl font-bold text-white"), g.Text(ps.SolutionTitle)),
					),
					Div(
						Class("space-y-6"),
						g.Group(g.Map(ps.Items, func(it content.ComparisonItem) g.Node {
							return Div(
								Class("flex items-center justify-between p-4 bg-gray-800 rounded-lg border border-gray-700"),
								g.Attr("data-row", ""),
								Div(
									Class("flex items-center gap-3"),
									Div(Class("text-green-400"), Icon(it.Icon+" w-6 h-6", "")),
									Span(Class("text-white font-medium"), g.Text(it.Solution)),
								),
								checkIcon("text-green-500 w-5 h-5"),
							)
						})),
					),
				),
			),
		),
	)
}
