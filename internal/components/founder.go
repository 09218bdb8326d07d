package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

func FounderSection(f content.Founder) g.Node {
	return Section(
		ID("founder"),
		Class("py-20 bg-amber-50"),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("bg-white rounded-3xl p-8 md:p-12 shadow-xl border border-amber-100 flex flex-col md:flex-row items-center gap-12"),

				Div(
					Class("md:w-1/3 text-center"),
					Div(
						Class("w-48 h-48 mx-auto bg-gray-200 rounded-full overflow-hidden mb-6 border-4 border-amber-200 shadow-inner"),
						Div(
							Class("w-full h-full bg-gray-300 flex items-center justify-center text-gray-500"),
							Span(Class("text-4xl"), g.Text(f.Initials)),
						),
					),
					H3(Class("text-2xl font-bold text-gray-900"), g.Text(f.Name)),
					P(Class("text-amber-600 font-semibold mb-4"), g.Text(f.Role)),
					Div(
						Class("flex justify-center gap-2"),
						Icon("lucide--award text-gray-400 w-5 h-5", ""),
						Span(Class("text-sm text-gray-500"), g.Text(f.Tagline)),
					),
				),

				Div(
					Class("md:w-2/3 relative"),
					Div(Class("absolute -top-6 -left-6 text-amber-200 opacity-50"), Icon("lucide--factory w-24 h-24", "")),
					sectionHeading("text-3xl font-bold text-gray-900 mb-6 relative z-10", f.Heading),
					g.El("blockquote",
						Class("text-xl text-gray-600 italic mb-6 relative z-10 leading-relaxed"),
						g.Textf("“%s”", f.Quote),
					),
					Div(
						Class("flex flex-col sm:flex-row gap-4"),
						g.Group(g.Map(f.Commitment, func(c string) g.Node {
							return Div(
								Class("flex items-center gap-3 bg-amber-50 px-4 py-2 rounded-lg border border-amber-100"),
								Div(Class("bg-amber-500 rounded-full p-1"), checkIcon("text-white w-4 h-4")),
								Span(Class("text-sm font-medium text-gray-700"), g.Text(c)),
							)
						})),
					),
				),
			),
		),
	)
}
