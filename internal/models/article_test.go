package models

import "testing"

func TestDeriveInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "latin name", in: "jane doe", want: "JA"},
		{name: "already short", in: "bo", want: "BO"},
		{name: "single char", in: "x", want: "X"},
		{name: "cjk name keeps two characters", in: "内容团队", want: "内容"},
		{name: "empty falls back", in: "", want: "AI"},
		{name: "whitespace only falls back", in: "   ", want: "AI"},
		{name: "leading space trimmed first", in: " zed q", want: "ZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveInitials(tt.in); got != tt.want {
				t.Errorf("DeriveInitials(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
