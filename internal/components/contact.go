package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

func ContactSection(c content.Contact) g.Node {
	return Section(
		ID("contact"),
		Class("py-20 bg-white"),
		Div(
			Class("container mx-auto px-6 max-w-4xl text-center"),
			sectionHeading("text-4xl font-bold text-gray-900 mb-6", c.Heading),
			P(Class("text-xl text-gray-600 mb-10"), g.Text(c.Intro)),

			Div(
				Class("bg-gradient-to-br from-gray-900 to-gray-800 p-8 rounded-2xl shadow-2xl text-white"),
				H3(Class("text-2xl font-bold mb-2"), g.Text(c.CardTitle)),
				P(Class("text-gray-400 mb-8"), g.Text(c.CardText)),
				A(
					Href(c.LinkURL),
					Target("_blank"),
					Rel("noreferrer"),
					Class("inline-flex items-center gap-3 bg-green-500 hover:bg-green-600 text-white text-lg font-bold px-8 py-4 rounded-full transition-all transform hover:scale-105 shadow-lg shadow-green-500/30"),
					Icon("lucide--phone w-6 h-6", ""),
					g.Text(c.LinkLabel),
				),
				P(Class("mt-4 text-xs text-gray-500"), g.Text(c.ResponseNote)),
			),
		),
	)
}
