package segment

import (
	"reflect"
	"testing"

	"polywise/internal/models"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []models.ContentBlock
	}{
		{
			name: "heading then plain section",
			raw:  "# Intro\nHello\n\nWorld",
			want: []models.ContentBlock{
				{Heading: "Intro", Body: "Hello"},
				{Heading: "段落 2", Body: "World"},
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only input",
			raw:  "  \n\n  \n",
			want: nil,
		},
		{
			name: "single plain section",
			raw:  "Just one paragraph.",
			want: []models.ContentBlock{
				{Heading: "段落 1", Body: "Just one paragraph."},
			},
		},
		{
			name: "deep heading level",
			raw:  "### 深入原理\n细节说明",
			want: []models.ContentBlock{
				{Heading: "深入原理", Body: "细节说明"},
			},
		},
		{
			name: "three or more newlines still one break",
			raw:  "first\n\n\n\nsecond",
			want: []models.ContentBlock{
				{Heading: "段落 1", Body: "first"},
				{Heading: "段落 2", Body: "second"},
			},
		},
		{
			name: "empty sections dropped and numbering follows kept sections",
			raw:  "\n\nalpha\n\n   \n\nbeta",
			want: []models.ContentBlock{
				{Heading: "段落 1", Body: "alpha"},
				{Heading: "段落 2", Body: "beta"},
			},
		},
		{
			name: "heading without space is body text",
			raw:  "#NoSpace\ncontent",
			want: []models.ContentBlock{
				{Heading: "段落 1", Body: "#NoSpace\ncontent"},
			},
		},
		{
			name: "heading-only section keeps full text as body",
			raw:  "# Lonely Heading",
			want: []models.ContentBlock{
				{Heading: "Lonely Heading", Body: "# Lonely Heading"},
			},
		},
		{
			name: "multi-line body preserved",
			raw:  "# Steps\nfirst line\nsecond line",
			want: []models.ContentBlock{
				{Heading: "Steps", Body: "first line\nsecond line"},
			},
		},
		{
			name: "marker with only trailing spaces keeps default heading",
			raw:  "#   \nbody text",
			want: []models.ContentBlock{
				{Heading: "段落 1", Body: "body text"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

// TestSplitRecompute verifies that splitting the same content twice yields
// identical blocks — the write path relies on this to recompute rather
// than diff derived blocks.
func TestSplitRecompute(t *testing.T) {
	raw := "# 开篇\n概述\n\n正文第一段\n\n# 总结\n要点回顾"
	first := Split(raw)
	second := Split(raw)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Split is not stable across calls: %#v vs %#v", first, second)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(first))
	}
}
