package components

import (
	g "maragu.dev/gomponents"

	"github.com/sekammas/sekammas/apps/website/internal/content"
	"github.com/sekammas/sekammas/apps/website/internal/navstate"
	"github.com/sekammas/sekammas/apps/website/internal/seo"
)

// PageOptions carries the per-render inputs that are not site content.
type PageOptions struct {
	Nav      navstate.State
	Year     int
	SiteURL  string
	// AssetURL maps a static file name to its URL. Nil serves it unversioned
	// from /static.
	AssetURL func(name string) string
}

// Sections returns the page sections in their fixed vertical order.
func Sections(site content.Site, opts PageOptions) []g.Node {
	return []g.Node{
		NavigationBar(site.Brand, site.BrandAccent, site.Nav, opts.Nav),
		HeroSection(site.Hero),
		ProblemSolutionSection(site.ProblemSolution),
		TechnologySection(site.Technology),
		ProductCatalog(site.Catalog),
		FounderSection(site.Founder),
		ContactSection(site.Contact),
		PageFooter(site.BrandName(), site.Footer, opts.Year),
	}
}

// Page is the root composition: the document shell around every section.
func Page(site content.Site, opts PageOptions) g.Node {
	meta := seo.ForSite(site.Title, site.Description, site.Hero.ImageURL, opts.SiteURL, seo.SiteJSONLD(site, opts.SiteURL))
	return Layout(PageConfig{Meta: meta, AssetURL: opts.AssetURL}, Sections(site, opts)...)
}
