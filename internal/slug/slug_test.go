package slug

import "testing"

// TestMake exercises the slug generator with a broad range of inputs
// covering typical titles, special characters, CJK text, and boundary
// conditions.
func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "punctuation stripped",
			input: "Hello, World!",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Prediction Markets 2026",
			want:  "prediction-markets-2026",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "apostrophe removed",
			input: "How's it going?",
			want:  "hows-it-going",
		},

		// --- CJK ---
		{
			name:  "chinese title kept",
			input: "入门教程",
			want:  "入门教程",
		},
		{
			name:  "mixed chinese and english",
			input: "Polymarket 下单 指南",
			want:  "polymarket-下单-指南",
		},
		{
			name:  "chinese punctuation stripped",
			input: "什么是预测市场？",
			want:  "什么是预测市场",
		},

		// --- Whitespace and hyphens ---
		{
			name:  "surrounding whitespace trimmed",
			input: "  padded title  ",
			want:  "padded-title",
		},
		{
			name:  "internal whitespace run collapses",
			input: "too   many    spaces",
			want:  "too-many-spaces",
		},
		{
			name:  "existing hyphens collapse",
			input: "pre--hyphenated -- title",
			want:  "pre-hyphenated-title",
		},
		{
			name:  "tabs and newlines treated as whitespace",
			input: "line\tone\nline two",
			want:  "line-one-line-two",
		},

		// --- Edge cases ---
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "symbols only",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "numbers survive",
			input: "100% of 42",
			want:  "100-of-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestMakeDeterministic verifies repeated calls yield identical results.
func TestMakeDeterministic(t *testing.T) {
	const input = "Stable, Deterministic 输出!"
	first := Make(input)
	for i := 0; i < 5; i++ {
		if got := Make(input); got != first {
			t.Fatalf("Make is not deterministic: %q vs %q", got, first)
		}
	}
}
