package matching

import (
	"strings"
	"testing"
)

func TestNormalize_KeepsTechTokens(t *testing.T) {
	cases := map[string]string{
		"C++ / C# Developer":        "c++ c# developer",
		"Node.js & React!":          "node.js react",
		"  Senior   Go  Engineer ":  "senior go engineer",
		"Sr. Backend (Remote, EU)":  "sr. backend remote eu",
		"умный текст Python":        "python",
		"":                          "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_OutputCharsetAndSpacing(t *testing.T) {
	inputs := []string{
		"Hello,\n\tWorld!!",
		"a  b   c",
		"$$$ 100k+ ***",
		"(((remote)))",
	}
	for _, in := range inputs {
		got := Normalize(in)
		if strings.TrimSpace(got) != got {
			t.Fatalf("Normalize(%q) has surrounding space: %q", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Fatalf("Normalize(%q) has a double space: %q", in, got)
		}
		for _, r := range got {
			if !isTokenRune(r) && r != ' ' {
				t.Fatalf("Normalize(%q) kept invalid rune %q in %q", in, r, got)
			}
		}
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("Python, python PYTHON; Django")
	if len(set) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(set), set)
	}
	for _, want := range []string{"python", "django"} {
		if _, ok := set[want]; !ok {
			t.Fatalf("missing token %q", want)
		}
	}
	if len(TokenSet("")) != 0 {
		t.Fatalf("empty input must yield empty set")
	}
}
