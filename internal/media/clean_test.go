package media

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"non-ascii run", "café au lait", "caf au lait"},
		{"collapses spaces", "a    b\t\tc", "a b c"},
		{"collapses blank lines", "line one\n\n\n\nline two", "line one\nline two"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only noise", "éèê", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
