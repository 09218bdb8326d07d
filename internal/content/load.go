package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	NavLinkCount    = 5
	ComparisonCount = 4
	ProductCount    = 3
)

// ErrInvalidContent is returned when site content breaks an authoring rule.
var ErrInvalidContent = errors.New("invalid site content")

// Load reads an optional YAML override file. Fields present in the file
// replace the defaults; slices are replaced as a whole. An empty path
// returns Default().
func Load(path string) (Site, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read content file %s: %w", path, err)
	}
	return Decode(raw)
}

// Decode overlays YAML onto the default content and validates the result.
func Decode(raw []byte) (Site, error) {
	site := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil && !errors.Is(err, io.EOF) {
		return Site{}, fmt.Errorf("decode content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate checks the fixed shape of the page: the link, comparison and
// product counts, fragment hrefs and complete product records.
func (s Site) Validate() error {
	var problems []string
	if n := len(s.Nav.Links); n != NavLinkCount {
		problems = append(problems, fmt.Sprintf("nav: want %d links, got %d", NavLinkCount, n))
	}
	for i, l := range append(append([]NavLink{}, s.Nav.Links...), s.Nav.DesktopCTA, s.Nav.MobileCTA) {
		if l.Name == "" || !strings.HasPrefix(l.Href, "#") || len(l.Href) < 2 {
			problems = append(problems, fmt.Sprintf("nav[%d]: %q -> %q is not a named fragment link", i, l.Name, l.Href))
		}
	}
	if n := len(s.ProblemSolution.Items); n != ComparisonCount {
		problems = append(problems, fmt.Sprintf("problem_solution: want %d items, got %d", ComparisonCount, n))
	}
	for i, it := range s.ProblemSolution.Items {
		if it.Problem == "" || it.Solution == "" {
			problems = append(problems, fmt.Sprintf("problem_solution[%d]: problem and solution are required", i))
		}
	}
	if n := len(s.Catalog.Products); n != ProductCount {
		problems = append(problems, fmt.Sprintf("catalog: want %d products, got %d", ProductCount, n))
	}
	for i, p := range s.Catalog.Products {
		if p.Title == "" || p.Category == "" || p.Description == "" || p.ImageURL == "" {
			problems = append(problems, fmt.Sprintf("catalog[%d]: title, category, description and image_url are required", i))
		}
		if len(p.Features) == 0 {
			problems = append(problems, fmt.Sprintf("catalog[%d]: features must not be empty", i))
		}
	}
	if s.Contact.LinkURL == "" {
		problems = append(problems, "contact: link_url is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
	}
	return nil
}

// WithContactURL returns a copy of s pointing the contact link at url.
// An empty url leaves the content unchanged.
func (s Site) WithContactURL(url string) Site {
	if url != "" {
		s.Contact.LinkURL = url
	}
	return s
}
