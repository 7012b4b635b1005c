// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"polywise/internal/models"
	"polywise/internal/segment"
	"polywise/internal/slug"
)

// Field defaults applied on article writes.
const (
	defaultDuration   = "5 分钟阅读"
	defaultCover      = "https://images.unsplash.com/photo-1482192505345-5655af888cc4?auto=format&fit=crop&w=1400&q=80"
	defaultAuthorName = "内容团队"
	defaultAuthorRole = "专栏作者"
	defaultCategory   = "自定义专栏"
)

// StringList accepts either a JSON array of strings or a single string,
// which is split on newlines and commas with empties dropped. Used for the
// takeaways field, which the admin form submits as free text.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("string or string array expected: %w", err)
	}

	var out []string
	for _, part := range strings.FieldsFunc(single, func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}

// AuthorInput is the caller-supplied byline. Initials are never accepted
// from the caller; they are derived from the raw name on every write.
type AuthorInput struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ArticleInput carries the fields accepted on article create and update.
// Derived fields (category, initials, contentBlocks) supplied by the client
// are ignored and recomputed.
type ArticleInput struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	Topic      string      `json:"topic"`
	TopicLabel string      `json:"topicLabel"`
	Duration   string      `json:"duration"`
	Updated    string      `json:"updated"`
	Cover      string      `json:"cover"`
	Content    string      `json:"content"`
	Tags       []string    `json:"tags"`
	Takeaways  StringList  `json:"takeaways"`
	Author     AuthorInput `json:"author"`
}

// ArticleStore manages the article collection.
type ArticleStore struct {
	s *Store
}

// NewArticleStore returns a new ArticleStore over the shared content store.
func NewArticleStore(s *Store) *ArticleStore {
	return &ArticleStore{s: s}
}

// List returns all articles in storage order.
func (a *ArticleStore) List() ([]models.Article, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	return a.s.loadArticles()
}

// Get returns the article with the given id.
func (a *ArticleStore) Get(id string) (*models.Article, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	articles, err := a.s.loadArticles()
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}
	return nil, &NotFoundError{Message: "未找到对应文章"}
}

// Create validates the input, derives the article id, applies defaults and
// derivations, and appends the new record. The id comes from the explicit
// input id or else the title via the slug generator, falling back to a
// timestamp-based id when the slug is empty.
func (a *ArticleStore) Create(in ArticleInput) (*models.Article, error) {
	if err := validateArticleInput(in); err != nil {
		return nil, err
	}

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	articles, err := a.s.loadArticles()
	if err != nil {
		return nil, err
	}
	topics, err := a.s.loadTopics()
	if err != nil {
		return nil, err
	}

	matched := findTopic(topics, in.Topic)
	if matched == nil {
		return nil, &ValidationError{Message: "专题不存在，请在专题管理中创建后再使用"}
	}

	source := in.ID
	if source == "" {
		source = in.Title
	}
	id := slug.Make(source)
	if id == "" {
		id = fmt.Sprintf("article-%d", a.s.now().UnixMilli())
	}

	for _, existing := range articles {
		if existing.ID == id {
			return nil, &ConflictError{Message: "存在同名文章，请修改标题或指定自定义 ID"}
		}
	}

	article := a.assemble(in, matched, nil)
	article.ID = id

	articles = append(articles, article)
	if err := a.s.saveArticles(articles); err != nil {
		return nil, err
	}

	slog.Info("article created", "id", article.ID, "topic", article.Topic)
	return &article, nil
}

// Update validates like Create, then rewrites every field of the stored
// article from the request except the immutable id and the cover, which
// falls back to its prior value when none is supplied. Derived fields are
// always recomputed, never carried over.
func (a *ArticleStore) Update(id string, in ArticleInput) (*models.Article, error) {
	if err := validateArticleInput(in); err != nil {
		return nil, err
	}

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	articles, err := a.s.loadArticles()
	if err != nil {
		return nil, err
	}
	topics, err := a.s.loadTopics()
	if err != nil {
		return nil, err
	}

	matched := findTopic(topics, in.Topic)
	if matched == nil {
		return nil, &ValidationError{Message: "专题不存在，请在专题管理中创建后再使用"}
	}

	idx := -1
	for i := range articles {
		if articles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, &NotFoundError{Message: "未找到对应文章"}
	}

	article := a.assemble(in, matched, &articles[idx])
	article.ID = id

	articles[idx] = article
	if err := a.s.saveArticles(articles); err != nil {
		return nil, err
	}

	slog.Info("article updated", "id", article.ID, "topic", article.Topic)
	return &article, nil
}

// Delete removes the article with the given id and persists the collection.
func (a *ArticleStore) Delete(id string) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	articles, err := a.s.loadArticles()
	if err != nil {
		return err
	}

	idx := -1
	for i := range articles {
		if articles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &NotFoundError{Message: "未找到对应文章"}
	}

	articles = append(articles[:idx], articles[idx+1:]...)
	if err := a.s.saveArticles(articles); err != nil {
		return err
	}

	slog.Info("article deleted", "id", id)
	return nil
}

// assemble builds the stored record from validated input. prior is non-nil
// on update; it supplies the fallback cover and category.
func (a *ArticleStore) assemble(in ArticleInput, topic *models.Topic, prior *models.Article) models.Article {
	category := in.TopicLabel
	if category == "" {
		category = topic.Label
	}
	if category == "" && prior != nil {
		category = prior.Category
	}
	if category == "" {
		category = defaultCategory
	}

	duration := in.Duration
	if duration == "" {
		duration = defaultDuration
	}

	updated := in.Updated
	if updated == "" {
		updated = a.s.today()
	}

	cover := in.Cover
	if cover == "" {
		if prior != nil {
			cover = prior.Cover
		} else {
			cover = defaultCover
		}
	}

	author := models.Author{
		Name:     in.Author.Name,
		Role:     in.Author.Role,
		Initials: models.DeriveInitials(in.Author.Name),
	}
	if author.Name == "" {
		author.Name = defaultAuthorName
	}
	if author.Role == "" {
		author.Role = defaultAuthorRole
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	takeaways := []string(in.Takeaways)
	if takeaways == nil {
		takeaways = []string{}
	}

	blocks := segment.Split(in.Content)
	if blocks == nil {
		blocks = []models.ContentBlock{}
	}

	return models.Article{
		Title:         in.Title,
		Summary:       in.Summary,
		Topic:         in.Topic,
		Category:      category,
		Duration:      duration,
		Updated:       updated,
		Cover:         cover,
		Content:       in.Content,
		Author:        author,
		Tags:          tags,
		Takeaways:     takeaways,
		ContentBlocks: blocks,
	}
}

// validateArticleInput checks the required fields common to create and update.
func validateArticleInput(in ArticleInput) error {
	if in.Title == "" || in.Summary == "" || in.Topic == "" || in.Content == "" {
		return &ValidationError{Message: "请提供完整的标题、摘要、专题与内容"}
	}
	return nil
}

// findTopic returns the topic with the given id, or nil.
func findTopic(topics []models.Topic, id string) *models.Topic {
	for i := range topics {
		if topics[i].ID == id {
			return &topics[i]
		}
	}
	return nil
}
