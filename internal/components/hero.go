package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

func HeroSection(hero content.Hero) g.Node {
	return Section(
		ID("mission"),
		Class("relative min-h-screen flex items-center pt-20 overflow-hidden"),

		Div(
			Class("absolute inset-0 z-0"),
			Img(Src(hero.ImageURL), Alt(hero.ImageAlt), Class("w-full h-full object-cover")),
			Div(Class("absolute inset-0 bg-gradient-to-r from-gray-900 via-gray-900/80 to-transparent")),
		),

		Div(
			Class("container mx-auto px-6 relative z-10 grid md:grid-cols-2 gap-12 items-center"),

			Div(
				Class("space-y-6 text-white"),
				Div(
					Class("inline-flex items-center gap-2 bg-yellow-500/20 border border-yellow-500/30 px-4 py-1 rounded-full text-yellow-400 text-sm font-semibold tracking-wide"),
					Icon("lucide--factory w-4 h-4", ""),
					g.Text(hero.Badge),
				),

				H1(
					Class("text-4xl md:text-6xl font-bold leading-tight"),
					g.Text(hero.Headline+" "),
					Span(
						Class("text-transparent bg-clip-text bg-gradient-to-r from-yellow-400 to-yellow-600"),
						g.Text(hero.HeadlineEmph),
					),
				),

				P(Class("text-gray-300 text-lg md:text-xl max-w-xl"), g.Text(hero.Lead)),

				Div(
					Class("flex flex-col sm:flex-row gap-4 pt-4"),
					A(
						Href(hero.PrimaryCTA.Href),
						Class("bg-green-600 hover:bg-green-700 text-white px-8 py-4 rounded-lg font-bold flex items-center justify-center gap-2 transition-all"),
						g.Text(hero.PrimaryCTA.Name),
						Icon("lucide--arrow-right w-5 h-5", ""),
					),
					A(
						Href(hero.SecondaryCTA.Href),
						Class("bg-white/10 hover:bg-white/20 backdrop-blur-md text-white px-8 py-4 rounded-lg font-bold flex items-center justify-center gap-2 border border-white/20 transition-all"),
						g.Text(hero.SecondaryCTA.Name),
					),
				),

				Div(
					Class("pt-8 flex items-center gap-4 text-sm text-gray-400 border-t border-gray-800"),
					Icon("lucide--map-pin w-5 h-5 text-green-500", ""),
					Span(g.Text(hero.Location)),
				),
			),

			Div(
				Class("hidden md:block"),
				Div(
					Class("bg-white/5 backdrop-blur-md border border-white/10 p-8 rounded-2xl shadow-2xl"),
					H3(
						Class("text-white font-bold text-xl mb-6 flex items-center gap-2"),
						Icon("lucide--recycle text-green-400", ""),
						g.Text(hero.ImpactHeading),
					),
					Div(
						Class("grid grid-cols-2 gap-6"),
						g.Group(g.Map(hero.Stats, func(s content.Stat) g.Node {
							return Div(
								Class("bg-gray-900/50 p-4 rounded-lg border-l-4 border-"+s.Accent+"-500"),
								Div(Class("text-3xl font-bold text-white"), g.Text(s.Value)),
								Div(Class("text-gray-400 text-sm"), g.Text(s.Label)),
							)
						})),
					),
				),
			),
		),
	)
}
