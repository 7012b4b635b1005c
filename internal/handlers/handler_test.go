// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"polywise/internal/store"
)

// testAPI wires the article and topic handlers onto a fresh store backed
// by a temp directory, mirroring the real route layout.
type testAPI struct {
	router *chi.Mux
	store  *store.Store
	topics *store.TopicStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	s := store.Open(t.TempDir())
	articles := NewArticles(store.NewArticleStore(s), nil)
	topicStore := store.NewTopicStore(s)
	topics := NewTopics(topicStore, nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/articles", articles.List)
		r.Post("/articles", articles.Create)
		r.Get("/articles/{id}", articles.Get)
		r.Put("/articles/{id}", articles.Update)
		r.Delete("/articles/{id}", articles.Delete)

		r.Get("/topics", topics.List)
		r.Post("/topics", topics.Create)
		r.Put("/topics/order", topics.Reorder)
		r.Delete("/topics/{topicId}", topics.Delete)
	})

	return &testAPI{router: r, store: s, topics: topicStore}
}

// seedTopic creates a topic directly through the store layer.
func (a *testAPI) seedTopic(t *testing.T, id, label string) {
	t.Helper()
	if _, err := a.topics.Create(id, label, ""); err != nil {
		t.Fatalf("seed topic %s: %v", id, err)
	}
}

// do runs a request through the router and returns the recorder.
func (a *testAPI) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// message extracts the "message" field from an error response.
func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	return body.Message
}
