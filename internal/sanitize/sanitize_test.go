package sanitize

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"Plain", "hello", MaxBody, "hello"},
		{"Trimmed", "  hello  ", MaxBody, "hello"},
		{"ScriptStripped", "  <script>alert(1)</script> hello  ", MaxBody, "hello"},
		{"TagsStripped", "<b>bold</b> and <a href=\"https://x\">linked</a>", MaxBody, "bold and linked"},
		{"EntitiesUnescaped", "fish & chips", MaxBody, "fish & chips"},
		{"OnlyMarkup", "<script>alert(1)</script>", MaxBody, ""},
		{"Empty", "   ", MaxBody, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clean(c.in, c.max); got != c.want {
				t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCleanTruncates(t *testing.T) {
	long := strings.Repeat("x", 3000)
	got := Clean(long, MaxBody)
	if len([]rune(got)) != MaxBody {
		t.Errorf("expected exactly %d codepoints, got %d", MaxBody, len([]rune(got)))
	}

	// Truncation counts codepoints, not bytes.
	accented := strings.Repeat("é", 100)
	if got := Clean(accented, 64); len([]rune(got)) != 64 {
		t.Errorf("expected 64 codepoints, got %d", len([]rune(got)))
	}
}
