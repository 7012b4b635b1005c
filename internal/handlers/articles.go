// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"polywise/internal/cache"
	"polywise/internal/store"
)

// Articles groups the article CRUD handlers.
type Articles struct {
	store *store.ArticleStore
	pages *cache.PageCache
}

// NewArticles creates the article handler group. pages may be nil when no
// Valkey instance is configured.
func NewArticles(s *store.ArticleStore, pages *cache.PageCache) *Articles {
	return &Articles{store: s, pages: pages}
}

// List returns every article in storage order.
func (h *Articles) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// Get returns a single article by ID.
func (h *Articles) Get(w http.ResponseWriter, r *http.Request) {
	article, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Create adds a new article and returns it with all derived fields filled.
func (h *Articles) Create(w http.ResponseWriter, r *http.Request) {
	var in store.ArticleInput
	if !decodeJSON(w, r, &in) {
		return
	}

	article, err := h.store.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

// Update replaces an article's editable fields. The ID stays fixed even if
// the title changes.
func (h *Articles) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in store.ArticleInput
	if !decodeJSON(w, r, &in) {
		return
	}

	article, err := h.store.Update(id, in)
	if err != nil {
		writeError(w, err)
		return
	}

	h.pages.Invalidate(r.Context(), id)
	writeJSON(w, http.StatusOK, article)
}

// Delete removes an article and reports which ID was deleted.
func (h *Articles) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(id); err != nil {
		writeError(w, err)
		return
	}

	h.pages.Invalidate(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
