// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"polywise/internal/cache"
	"polywise/internal/sharemeta"
	"polywise/internal/store"
)

// Share serves the article page with server-rendered social meta tags.
// Crawlers fetching a shared link get the article's real title, summary,
// and cover without executing any JavaScript.
type Share struct {
	store   *store.ArticleStore
	pages   *cache.PageCache
	siteDir string
}

// NewShare creates the share-page handler. siteDir is where the static
// article.html shell lives; pages may be nil.
func NewShare(s *store.ArticleStore, pages *cache.PageCache, siteDir string) *Share {
	return &Share{store: s, pages: pages, siteDir: siteDir}
}

// Page serves article.html. With a known ?id= the meta tags are rewritten
// for that article and the result cached; otherwise the raw shell is sent
// so the client-side app can show its own not-found state.
func (h *Share) Page(w http.ResponseWriter, r *http.Request) {
	shellPath := filepath.Join(h.siteDir, "article.html")

	articleID := r.URL.Query().Get("id")
	if articleID == "" {
		http.ServeFile(w, r, shellPath)
		return
	}

	if html, ok := h.pages.Get(r.Context(), articleID); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
		return
	}

	article, err := h.store.Get(articleID)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			http.ServeFile(w, r, shellPath)
			return
		}
		writeError(w, err)
		return
	}

	shell, err := os.ReadFile(shellPath)
	if err != nil {
		writeError(w, err)
		return
	}

	html := sharemeta.Render(shell, article, sharemeta.PageData{
		Scheme: requestScheme(r),
		Host:   r.Host,
		Path:   r.URL.RequestURI(),
	})

	h.pages.Set(r.Context(), articleID, html)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// requestScheme reports the client-facing scheme, honoring the proxy
// header set by TLS-terminating load balancers.
func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
