package handlers

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sekammas/sekammas/apps/website/internal/components"
	"github.com/sekammas/sekammas/apps/website/internal/content"
	"github.com/sekammas/sekammas/apps/website/internal/navstate"
)

type Pages struct {
	site     content.Site
	siteURL  string
	now      func() time.Time
	assetURL func(string) string
	log      *zap.Logger
}

// NewPages returns the page handlers for site. The content is validated once
// here and served unchanged afterwards.
func NewPages(site content.Site, siteURL string, log *zap.Logger) (*Pages, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &Pages{site: site, siteURL: siteURL, now: time.Now, log: log}, nil
}

// WithClock replaces the clock used for the footer year.
func (p *Pages) WithClock(now func() time.Time) *Pages {
	p.now = now
	return p
}

// WithAssetURL sets how static asset names become URLs in the page.
func (p *Pages) WithAssetURL(fn func(name string) string) *Pages {
	p.assetURL = fn
	return p
}

func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	page := components.Page(p.site, components.PageOptions{
		Nav:      navstate.Initial(),
		Year:     p.now().Year(),
		SiteURL:  p.siteURL,
		AssetURL: p.assetURL,
	})

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		p.log.Error("render landing page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
