// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the article and topic repositories on top of the
// two flat JSON documents that hold all site content. Every mutation is a
// full read-compute-overwrite cycle on a document; the Store serializes all
// of them through one lock so concurrent handlers never lose updates and a
// cascading topic delete is observed atomically by in-process readers.
package store

import (
	"path/filepath"
	"sync"
	"time"

	"polywise/internal/docstore"
	"polywise/internal/models"
)

// Store owns the two content documents. It is the only component that
// touches them; repositories hand out by-value copies of the loaded records.
type Store struct {
	mu       sync.RWMutex
	articles *docstore.Document[models.Article]
	topics   *docstore.Document[models.Topic]

	// now is swappable in tests for deterministic dates and fallback ids.
	now func() time.Time
}

// Open creates a store over articles.json and topics.json inside dataDir.
// The documents themselves are created lazily on first access.
func Open(dataDir string) *Store {
	return &Store{
		articles: docstore.New[models.Article](filepath.Join(dataDir, "articles.json")),
		topics:   docstore.New[models.Topic](filepath.Join(dataDir, "topics.json")),
		now:      time.Now,
	}
}

// loadArticles reads the article document. Callers must hold s.mu.
func (s *Store) loadArticles() ([]models.Article, error) {
	articles, err := s.articles.Load()
	if err != nil {
		return nil, &StorageError{Op: "load articles", Err: err}
	}
	return articles, nil
}

// loadTopics reads the topic document and applies the order migration:
// topics stored before the order field existed get their storage position
// (1-based) as order. Callers must hold s.mu.
func (s *Store) loadTopics() ([]models.Topic, error) {
	topics, err := s.topics.Load()
	if err != nil {
		return nil, &StorageError{Op: "load topics", Err: err}
	}
	for i := range topics {
		if topics[i].Order <= 0 {
			topics[i].Order = i + 1
		}
	}
	return topics, nil
}

// saveArticles overwrites the article document. Callers must hold s.mu.
func (s *Store) saveArticles(articles []models.Article) error {
	if err := s.articles.Save(articles); err != nil {
		return &StorageError{Op: "save articles", Err: err}
	}
	return nil
}

// saveTopics overwrites the topic document. Callers must hold s.mu.
func (s *Store) saveTopics(topics []models.Topic) error {
	if err := s.topics.Save(topics); err != nil {
		return &StorageError{Op: "save topics", Err: err}
	}
	return nil
}

// today returns the current date in the ISO form used by article records.
func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}
