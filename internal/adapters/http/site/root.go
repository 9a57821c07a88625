// Package site serves the embedded web UI and the root redirect.
package site

import (
	"context"
	"net/http"
)

// indexPath is where the root redirect points.
const indexPath = "/static/index.html"

// Register attaches the static asset routes and the root redirect to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/", NewRootHandler().HandleRoot)
}

// RootHandler redirects the bare root to the UI index page.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / with a 307 to the index page. Any other path
// falling through to the catch-all pattern is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}
