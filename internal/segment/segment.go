// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package segment splits free-form article text into titled content blocks.
// Blocks are derived state: the write path recomputes them from the raw
// content on every save, so this package must stay deterministic.
package segment

import (
	"fmt"
	"regexp"
	"strings"

	"polywise/internal/models"
)

var (
	// sectionBreak separates sections on runs of two or more newlines.
	sectionBreak = regexp.MustCompile(`\n{2,}`)
	// headingMarker detects a Markdown-style heading as the first line.
	headingMarker = regexp.MustCompile(`^#+\s+`)
	// headingStrip removes the marker, including any trailing spaces.
	headingStrip = regexp.MustCompile(`^#+\s*`)
)

// Split divides raw article text into ordered content blocks. Sections are
// delimited by blank lines; empty sections are dropped. A section whose
// first line is a heading marker contributes that line's remainder as the
// block heading, otherwise the heading is "段落 N" with N the 1-based index
// among kept sections. Empty input yields no blocks.
func Split(raw string) []models.ContentBlock {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var blocks []models.ContentBlock
	for _, section := range sectionBreak.Split(raw, -1) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		lines := strings.Split(section, "\n")
		heading := fmt.Sprintf("段落 %d", len(blocks)+1)
		if headingMarker.MatchString(lines[0]) {
			if h := headingStrip.ReplaceAllString(lines[0], ""); h != "" {
				heading = h
			}
			lines = lines[1:]
		}

		body := strings.TrimSpace(strings.Join(lines, "\n"))
		if body == "" {
			// A heading-only section keeps its full text as the body.
			body = section
		}

		blocks = append(blocks, models.ContentBlock{Heading: heading, Body: body})
	}
	return blocks
}
