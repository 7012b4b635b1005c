// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted record shapes for the two JSON
// document collections (articles, topics) and the derived read-side views.
// Field names and JSON tags match the on-disk layout, which is authoritative
// for compatibility with existing data files.
package models

import (
	"strings"
	"unicode/utf8"
)

// Author is the byline embedded in every article. Initials are always
// derived on write, never trusted from the client.
type Author struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

// ContentBlock is one titled section of an article body, produced by
// segmenting the raw content on blank-line boundaries. Blocks are derived
// state: they are recomputed from Content on every write and never edited
// independently.
type ContentBlock struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Article is a single record in the articles document. Storage order of the
// document array is authoritative for listings.
type Article struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	Topic         string         `json:"topic"`
	Category      string         `json:"category"`
	Duration      string         `json:"duration"`
	Updated       string         `json:"updated"` // ISO date, YYYY-MM-DD
	Cover         string         `json:"cover"`
	Content       string         `json:"content"`
	Author        Author         `json:"author"`
	Tags          []string       `json:"tags"`
	Takeaways     []string       `json:"takeaways"`
	ContentBlocks []ContentBlock `json:"contentBlocks"`
}

// InitialsFallback is used when an article is created without an author name.
const InitialsFallback = "AI"

// DeriveInitials returns the author initials for the given raw name input:
// the first two characters of the name, upper-cased. The fallback applies
// when the raw name is empty, even if the stored name itself was defaulted.
func DeriveInitials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = InitialsFallback
	}
	if utf8.RuneCountInString(name) <= 2 {
		return strings.ToUpper(name)
	}
	runes := []rune(name)
	return strings.ToUpper(string(runes[:2]))
}
