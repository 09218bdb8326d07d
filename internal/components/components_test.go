package components

import (
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/sekammas/sekammas/apps/website/internal/content"
	"github.com/sekammas/sekammas/apps/website/internal/navstate"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

// requireInOrder asserts every needle appears in s, each after the previous.
func requireInOrder(t *testing.T, s string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		i := strings.Index(s[pos:], n)
		require.GreaterOrEqual(t, i, 0, "%q not found after offset %d", n, pos)
		pos += i + len(n)
	}
}

// openingTag returns the opening tag of the element carrying attr.
func openingTag(t *testing.T, s, attr string) string {
	t.Helper()
	i := strings.Index(s, attr)
	require.GreaterOrEqual(t, i, 0, "%s not found", attr)
	start := strings.LastIndex(s[:i], "<")
	end := strings.Index(s[i:], ">")
	return s[start : i+end+1]
}

func TestProductCatalogRendersThreeCardsInOrder(t *testing.T) {
	catalog := content.Default().Catalog
	out := render(t, ProductCatalog(catalog))

	assert.Equal(t, 3, strings.Count(out, "data-product"))
	assert.Contains(t, out, `id="products"`)

	titles := make([]string, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		titles = append(titles, html.EscapeString(p.Title))
	}
	requireInOrder(t, out, titles...)
}

func TestProductCardPreservesFieldAndFeatureOrder(t *testing.T) {
	p := content.Default().Catalog.Products[0]
	require.Equal(t, "5kg Premium Briquettes", p.Title)

	out := render(t, ProductCard(p))
	requireInOrder(t, out,
		html.EscapeString(p.Category),
		html.EscapeString(p.ImageURL),
		p.Title,
		p.Description,
		"Smokeless &amp; Non-Toxic",
		"Consistent Heat",
		"Perfect for Glamping",
		"Clean Handling",
	)
	assert.Equal(t, 4, strings.Count(out, "<li"))
}

func TestProductCardKeepsDuplicateFeatures(t *testing.T) {
	p := content.Product{
		Title:       "Sample",
		Category:    "Test",
		Description: "desc",
		ImageURL:    "https://example.com/a.jpg",
		Features:    []string{"b", "a", "b"},
	}
	out := render(t, ProductCard(p))
	assert.Equal(t, 3, strings.Count(out, "<li"))
}

func TestProblemSolutionPairsByIndex(t *testing.T) {
	ps := content.Default().ProblemSolution
	out := render(t, ProblemSolutionSection(ps))

	assert.Equal(t, 2*content.ComparisonCount, strings.Count(out, "data-row"))

	split := strings.Index(out, `data-column="solution"`)
	require.Greater(t, split, 0)
	statusQuo, solution := out[:split], out[split:]

	problems := make([]string, 0, len(ps.Items))
	solutions := make([]string, 0, len(ps.Items))
	for _, it := range ps.Items {
		problems = append(problems, html.EscapeString(it.Problem))
		solutions = append(solutions, html.EscapeString(it.Solution))
	}
	requireInOrder(t, statusQuo, problems...)
	requireInOrder(t, solution, solutions...)

	// row 0 pairs the first problem with the first solution
	assert.Equal(t, "Open Burning Pollution", ps.Items[0].Problem)
	assert.Equal(t, "Carbon-Neutral Upcycling", ps.Items[0].Solution)
	assert.Contains(t, solution, "&lt;10% Residue &amp; Smokeless")
}

func TestNavigationBarInitialState(t *testing.T) {
	site := content.Default()
	out := render(t, NavigationBar(site.Brand, site.BrandAccent, site.Nav, navstate.Initial()))

	header := openingTag(t, out, `id="site-nav"`)
	assert.Contains(t, header, navstate.StylesFor(navstate.Transparent).Header)
	assert.Contains(t, header, `data-variant="transparent"`)
	assert.Contains(t, header, `data-menu="closed"`)
	assert.Contains(t, header, `data-scroll-threshold="50"`)
	assert.Contains(t, header, "data-variant-classes=")

	assert.Contains(t, openingTag(t, out, `id="mobile-menu"`), ` hidden=""`)
	assert.Contains(t, openingTag(t, out, "data-nav-toggle"), `aria-expanded="false"`)

	for _, l := range site.Nav.Links {
		assert.Equal(t, 2, strings.Count(out, `href="`+l.Href+`"`), l.Href)
	}
	assert.Contains(t, out, site.Nav.DesktopCTA.Name)
	assert.Contains(t, out, site.Nav.MobileCTA.Name)
	// five mobile links plus the mobile call to action close the panel
	assert.Equal(t, 6, strings.Count(out, "data-nav-close"))
}

func TestNavigationBarSolidAndOpen(t *testing.T) {
	site := content.Default()
	state := navstate.State{Menu: navstate.Open, Variant: navstate.Solid}
	out := render(t, NavigationBar(site.Brand, site.BrandAccent, site.Nav, state))

	solid := navstate.StylesFor(navstate.Solid)
	header := openingTag(t, out, `id="site-nav"`)
	assert.Contains(t, header, solid.Header)
	assert.Contains(t, header, `data-variant="solid"`)
	assert.Contains(t, out, solid.Link)

	assert.NotContains(t, openingTag(t, out, `id="mobile-menu"`), ` hidden=""`)
	assert.Contains(t, openingTag(t, out, "data-nav-toggle"), `aria-expanded="true"`)
}

func TestContactSectionOpensNewContext(t *testing.T) {
	c := content.Default().Contact
	out := render(t, ContactSection(c))
	link := openingTag(t, out, `href="`+c.LinkURL+`"`)
	assert.Contains(t, link, `target="_blank"`)
	assert.Contains(t, link, `rel="noreferrer"`)
}

func TestPageFooterYear(t *testing.T) {
	out := render(t, PageFooter("SEKAM MAS", content.Default().Footer, 2031))
	assert.Contains(t, out, "© 2031 SEKAM MAS.")
	requireInOrder(t, out, `href="#mission"`, `href="#products"`, `href="#tech"`, `href="#contact"`)
}

func TestPageSectionOrder(t *testing.T) {
	out := render(t, Page(content.Default(), PageOptions{Nav: navstate.Initial(), Year: 2026, SiteURL: "https://sekammas.example"}))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	requireInOrder(t, out,
		`id="site-nav"`,
		`id="mission"`,
		`id="solutions"`,
		`id="tech"`,
		`id="products"`,
		`id="founder"`,
		`id="contact"`,
		"<footer",
	)
	assert.Contains(t, out, `<link rel="canonical" href="https://sekammas.example">`)
	assert.Equal(t, 1+content.ProductCount, strings.Count(out, `type="application/ld+json"`))
	assert.Contains(t, out, "/static/js/navigation.js")
}

func TestPageAssetURLs(t *testing.T) {
	versioned := func(name string) string { return "/assets/" + name + "?v=abc" }
	out := render(t, Page(content.Default(), PageOptions{AssetURL: versioned}))
	assert.Contains(t, out, `src="/assets/js/navigation.js?v=abc"`)
	assert.Contains(t, out, `href="/assets/styles.css?v=abc"`)
	assert.Contains(t, out, `href="/assets/images/favicon.svg?v=abc"`)

	plain := render(t, Page(content.Default(), PageOptions{}))
	assert.Contains(t, plain, `src="/static/js/navigation.js"`)
}

func TestSectionsCount(t *testing.T) {
	assert.Len(t, Sections(content.Default(), PageOptions{}), 8)
}

func TestIcon(t *testing.T) {
	out := render(t, Icon("lucide--flame w-6 h-6", ""))
	assert.Contains(t, out, `data-icon="lucide:flame"`)
	assert.Contains(t, out, `class="iconify inline-block w-6 h-6"`)
	assert.Contains(t, out, `aria-hidden="true"`)

	labelled := render(t, Icon("lucide--phone", "Phone"))
	assert.Contains(t, labelled, `aria-label="Phone"`)
	assert.Contains(t, labelled, `class="iconify inline-block"`)
}
