package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"net/http"
	"strings"
)

const versionLen = 12

// Assets serves files from an fs.FS with weak ETags and hands out
// content-versioned URLs for them. Request paths are relative to the FS
// (strip the mount prefix before this handler).
type Assets struct {
	prefix   string
	files    http.Handler
	etags    map[string]string
	versions map[string]string
}

// NewAssets hashes every file in fsys once. prefix is the path the handler
// is mounted under, e.g. "/static".
func NewAssets(fsys fs.FS, prefix string) *Assets {
	a := &Assets{
		prefix:   strings.TrimSuffix(prefix, "/"),
		files:    http.FileServer(http.FS(fsys)),
		etags:    map[string]string{},
		versions: map[string]string{},
	}
	_ = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil
		}
		sum := sha256.Sum256(b)
		hash := hex.EncodeToString(sum[:])
		a.etags["/"+path] = `W/"` + hash + `"`
		a.versions["/"+path] = hash[:versionLen]
		return nil
	})
	return a
}

// URL returns the public URL for name with a content version query, so a
// changed file gets a new URL. Unknown names get no version.
func (a *Assets) URL(name string) string {
	p := "/" + strings.TrimPrefix(name, "/")
	if v := a.versions[p]; v != "" {
		return a.prefix + p + "?v=" + v
	}
	return a.prefix + p
}

// ServeHTTP sets caching headers only for files that exist. A request
// carrying the current version is cacheable for a year; anything else must
// revalidate against the ETag.
func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	et, ok := a.etags[p]
	if !ok {
		a.files.ServeHTTP(w, r)
		return
	}

	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", et)
	if v := r.URL.Query().Get("v"); v != "" && v == a.versions[p] {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		w.Header().Set("Cache-Control", "public, no-cache")
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	a.files.ServeHTTP(w, r)
}
