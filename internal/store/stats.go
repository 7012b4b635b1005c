// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"sort"
	"time"

	"polywise/internal/models"
)

// Aggregate joins topics with articles read-only, producing per-topic
// counts and the latest update date. Articles whose updated value does not
// parse contribute a timestamp of zero and never set LatestUpdated; among
// equal timestamps the later article in storage order wins. Output follows
// topic order ascending regardless of storage order.
func Aggregate(topics []models.Topic, articles []models.Article) []models.TopicView {
	type bucket struct {
		count  int
		latest string
		ts     int64
	}

	buckets := make(map[string]*bucket)
	for _, a := range articles {
		if a.Topic == "" {
			continue
		}
		b := buckets[a.Topic]
		if b == nil {
			b = &bucket{}
			buckets[a.Topic] = b
		}
		b.count++
		if ts := parseWhen(a.Updated); ts > 0 && ts >= b.ts {
			b.ts = ts
			b.latest = a.Updated
		}
	}

	views := make([]models.TopicView, 0, len(topics))
	for _, topic := range topics {
		view := models.TopicView{Topic: topic}
		if b := buckets[topic.ID]; b != nil {
			view.Count = b.count
			if b.ts > 0 {
				latest := b.latest
				view.LatestUpdated = &latest
			}
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Order < views[j].Order
	})
	return views
}

// whenFormats are the accepted shapes for an article's updated value, most
// specific first.
var whenFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseWhen converts an updated value to unix milliseconds. Absent or
// unparsable values yield zero.
func parseWhen(s string) int64 {
	if s == "" {
		return 0
	}
	for _, layout := range whenFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
