package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sekammas/sekammas/apps/website/internal/seo"
)

const (
	defaultTitle       = "SEKAM MAS"
	defaultDescription = "Agricultural waste upcycled into bio-energy and eco-packaging."
)

type PageConfig struct {
	Meta     seo.Meta
	AssetURL func(name string) string
}

func staticURL(name string) string {
	return "/static/" + name
}

func Layout(config PageConfig, body ...g.Node) g.Node {
	meta := config.Meta
	asset := config.AssetURL
	if asset == nil {
		asset = staticURL
	}
	if meta.Title == "" {
		meta.Title = defaultTitle
	}
	if meta.Description == "" {
		meta.Description = defaultDescription
	}
	if meta.OG.Title == "" {
		meta.OG.Title = meta.Title
	}
	if meta.OG.Description == "" {
		meta.OG.Description = meta.Description
	}
	if meta.OG.Type == "" {
		meta.OG.Type = "website"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				g.If(meta.Canonical != "", Link(Rel("canonical"), Href(meta.Canonical))),

				Meta(g.Attr("property", "og:title"), Content(meta.OG.Title)),
				Meta(g.Attr("property", "og:description"), Content(meta.OG.Description)),
				Meta(g.Attr("property", "og:type"), Content(meta.OG.Type)),
				g.If(meta.OG.Image != "", Meta(g.Attr("property", "og:image"), Content(meta.OG.Image))),
				g.If(meta.OG.URL != "", Meta(g.Attr("property", "og:url"), Content(meta.OG.URL))),

				Link(Rel("icon"), Href(asset("images/favicon.svg")), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href(asset("styles.css"))),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),

				g.Group(g.Map(meta.JSONLD, func(doc string) g.Node {
					return Script(Type("application/ld+json"), g.Raw(doc))
				})),
			),
			Body(
				Class("min-h-screen font-sans text-gray-900 bg-white"),
				g.Group(body),

				Script(Src(asset("js/navigation.js")), Defer()),
			),
		),
	})
}
