package seo

import (
	"encoding/json"
	"strings"

	"github.com/sekammas/sekammas/apps/website/internal/content"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema with the postal address
// lines joined into streetAddress.
func Organization(name, url, logoURL string, address []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if len(address) > 0 {
		m["address"] = map[string]any{
			"@type":         "PostalAddress",
			"streetAddress": strings.Join(address, ", "),
		}
	}
	return m
}

// Product returns a minimal Product schema for a catalog entry.
func Product(p content.Product, brand string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        p.Title,
		"description": p.Description,
		"category":    p.Category,
	}
	if p.ImageURL != "" {
		m["image"] = p.ImageURL
	}
	if brand != "" {
		m["brand"] = map[string]any{"@type": "Brand", "name": brand}
	}
	return m
}

// SiteJSONLD returns the serialized schemas embedded in the page head: the
// organization followed by one entry per product, in catalog order.
func SiteJSONLD(site content.Site, siteURL string) []string {
	out := make([]string, 0, 1+len(site.Catalog.Products))
	if s := JSON(Organization(site.BrandName(), siteURL, "", site.Footer.Address)); s != "" {
		out = append(out, s)
	}
	for _, p := range site.Catalog.Products {
		if s := JSON(Product(p, site.BrandName())); s != "" {
			out = append(out, s)
		}
	}
	return out
}
