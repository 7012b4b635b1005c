// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"polywise/internal/cache"
	"polywise/internal/store"
)

// Topics groups the topic management handlers.
type Topics struct {
	store *store.TopicStore
	pages *cache.PageCache
}

// NewTopics creates the topic handler group. pages may be nil when no
// Valkey instance is configured.
func NewTopics(s *store.TopicStore, pages *cache.PageCache) *Topics {
	return &Topics{store: s, pages: pages}
}

// List returns all topics with per-topic article counts and the latest
// update date, sorted by display order.
func (h *Topics) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

type topicCreateRequest struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Create adds a new topic at the end of the display order.
func (h *Topics) Create(w http.ResponseWriter, r *http.Request) {
	var in topicCreateRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	topic, err := h.store.Create(in.ID, in.Label, in.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, topic)
}

type topicOrderRequest struct {
	Order []string `json:"order"`
}

// Reorder rewrites topic display positions from the given ID sequence.
// Topics not mentioned keep their current order value.
func (h *Topics) Reorder(w http.ResponseWriter, r *http.Request) {
	var in topicOrderRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.store.Reorder(in.Order); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("topics reordered", "count", len(in.Order))
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete removes a topic and every article filed under it, reporting how
// many articles went with it.
func (h *Topics) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "topicId")

	removed, err := h.store.Delete(id)
	if err != nil {
		writeError(w, err)
		return
	}

	// Any number of share pages may now be stale.
	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]int{"deleted": removed})
}
