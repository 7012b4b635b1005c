// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Topic is a single record in the topics document. Order is the explicit
// sort key for listings; the document array order is only advisory and is
// used as a migration fallback when a stored topic predates the field.
type Topic struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// TopicStats holds the per-topic figures computed by joining the article
// collection. LatestUpdated is nil (JSON null) when no article references
// the topic or none carries a usable updated date.
type TopicStats struct {
	Count         int     `json:"count"`
	LatestUpdated *string `json:"latestUpdated"`
}

// TopicView is the enriched topic returned by listings: the stored record
// augmented with derived stats. Stats are computed on read, never persisted.
type TopicView struct {
	Topic
	TopicStats
}
