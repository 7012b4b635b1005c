// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"log/slog"
	"regexp"

	"polywise/internal/models"
)

// topicIDPattern restricts topic ids to letters, digits, and hyphens.
var topicIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// TopicStore manages the topic collection, including the ordering key and
// the cascading delete into the article collection.
type TopicStore struct {
	s *Store
}

// NewTopicStore returns a new TopicStore over the shared content store.
func NewTopicStore(s *Store) *TopicStore {
	return &TopicStore{s: s}
}

// List returns all topics sorted ascending by order, each augmented with
// the article count and latest update date computed from the article
// collection. Stats are derived on every call, never stored.
func (t *TopicStore) List() ([]models.TopicView, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	topics, err := t.s.loadTopics()
	if err != nil {
		return nil, err
	}
	articles, err := t.s.loadArticles()
	if err != nil {
		return nil, err
	}
	return Aggregate(topics, articles), nil
}

// Create appends a new topic with the next order value. The id must match
// [A-Za-z0-9-]+ and be unique among topics.
func (t *TopicStore) Create(id, label, description string) (*models.Topic, error) {
	if id == "" || label == "" {
		return nil, &ValidationError{Message: "专题 ID 和名称为必填项"}
	}
	if !topicIDPattern.MatchString(id) {
		return nil, &ValidationError{Message: "专题 ID 仅能包含字母、数字或短横线"}
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	topics, err := t.s.loadTopics()
	if err != nil {
		return nil, err
	}
	for _, topic := range topics {
		if topic.ID == id {
			return nil, &ConflictError{Message: "该专题 ID 已存在"}
		}
	}

	maxOrder := 0
	for _, topic := range topics {
		if topic.Order > maxOrder {
			maxOrder = topic.Order
		}
	}

	topic := models.Topic{
		ID:          id,
		Label:       label,
		Description: description,
		Order:       maxOrder + 1,
	}
	topics = append(topics, topic)
	if err := t.s.saveTopics(topics); err != nil {
		return nil, err
	}

	slog.Info("topic created", "id", topic.ID, "order", topic.Order)
	return &topic, nil
}

// Reorder assigns order = position+1 to every topic mentioned in orderedIDs.
// Topics not mentioned keep their prior order. The whole document is
// rewritten in one step; there is no partial application.
func (t *TopicStore) Reorder(orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return &ValidationError{Message: "请提供新的排序数组"}
	}

	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		position[id] = i + 1
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	topics, err := t.s.loadTopics()
	if err != nil {
		return err
	}
	for i := range topics {
		if pos, ok := position[topics[i].ID]; ok {
			topics[i].Order = pos
		}
	}
	return t.s.saveTopics(topics)
}

// Delete removes a topic and every article referencing it, persisting both
// documents inside one critical section so no in-process reader observes
// the topic gone while its articles linger, or the reverse. It returns the
// number of articles removed.
func (t *TopicStore) Delete(id string) (int, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	topics, err := t.s.loadTopics()
	if err != nil {
		return 0, err
	}
	articles, err := t.s.loadArticles()
	if err != nil {
		return 0, err
	}

	idx := -1
	for i, topic := range topics {
		if topic.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, &NotFoundError{Message: "未找到对应专题"}
	}

	topics = append(topics[:idx], topics[idx+1:]...)

	remaining := articles[:0:0]
	for _, a := range articles {
		if a.Topic != id {
			remaining = append(remaining, a)
		}
	}
	removed := len(articles) - len(remaining)

	// Two documents, two writes: a crash in between can leave articles
	// still referencing the deleted topic. Accepted — there is no
	// cross-document journal (see DESIGN.md).
	if err := t.s.saveTopics(topics); err != nil {
		return 0, err
	}
	if err := t.s.saveArticles(remaining); err != nil {
		return 0, err
	}

	slog.Info("topic deleted", "id", id, "articles_removed", removed)
	return removed, nil
}
