package seo

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	JSONLD      []string
}

// ForSite builds page metadata from the title, description and hero image.
func ForSite(title, description, image, siteURL string, jsonld []string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   siteURL,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         siteURL,
		},
		JSONLD: jsonld,
	}
}
