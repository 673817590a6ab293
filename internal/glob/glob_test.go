package glob

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		pattern, s string
		want       bool
	}{
		{"[!a-z]*", "Firefox", true},
		{"[!a-z]*", "firefox", false},
		{"M*in", "Main", true},
		{"M?in", "Mxin", true},
		{"M?in", "Mxxin", false},
		{`\*`, "*", true},
		{`\*`, "X", false},
		{"*", "anything", true},
		{"[abc]", "b", true},
		{"[^abc]", "b", false},
		{"[a-c]*", "cx", true},
	}
	for _, c := range cases {
		if got := Match(c.pattern, c.s); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.s, got, c.want)
		}
	}
}

func TestUnclosedBracketLiteral(t *testing.T) {
	if !Match("[abc", "[abc") {
		t.Error("unclosed [ should match literally")
	}
}
