package utils

import (
	"strings"
	"testing"
)

func TestCleanSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  東京タワー  ", "東京タワー"},
		{"新宿駅   周辺", "新宿駅 周辺"},
		{"a\tb\nc", "a b c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanSpaces(tt.in); got != tt.want {
			t.Errorf("CleanSpaces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	short := "こんにちは"
	if got := TruncateRunes(short, 5000); got != short {
		t.Errorf("TruncateRunes() = %q, want unchanged", got)
	}
	long := strings.Repeat("あ", 5001)
	got := TruncateRunes(long, 5000)
	if runes := []rune(got); len(runes) != 5000 {
		t.Errorf("TruncateRunes() length = %d, want 5000", len(runes))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("TruncateRunes() should end with ellipsis")
	}
}
