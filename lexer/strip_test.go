package lexer

import (
	"strings"
	"testing"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no comments", "let x = 1;", "let x = 1;"},
		{"line comment", "a //x\nb", "a \nb"},
		{"block comment", "a/*x*/b", "ab"},
		{"line comment at end of input", "a //x", "a "},
		{"line comment excludes newline", "//x\n", "\n"},
		{"block comment with stars", "a/* * ** /*/b", "ab"},
		{"empty block comment", "/**/fn", "fn"},
		{"adjacent block comments", "/**/fn hi/**//**/()", "fn hi()"},
		{"line marker inside block", "a/* //not a line comment */b", "ab"},
		{"block removed before line", "x/*a*/ //rest\ny", "x \ny"},
		{"whitespace preserved", "a \t b\r\nc", "a \t b\r\nc"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripComments(tt.input)
			if err != nil {
				t.Fatalf("StripComments(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("StripComments(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripCommentsIdempotent(t *testing.T) {
	inputs := []string{
		"a //x\nb",
		"a/*x*/b",
		"/**/fn hi/**//**/() {\n\tif 1 == 1 {\n\t\tprint(\"hi\");\n}}// aje=  df d",
		"no comments at all",
	}

	for _, input := range inputs {
		once, err := StripComments(input)
		if err != nil {
			t.Fatalf("StripComments(%q) error: %v", input, err)
		}
		twice, err := StripComments(once)
		if err != nil {
			t.Fatalf("StripComments(%q) error: %v", once, err)
		}
		if twice != once {
			t.Errorf("stripping not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}

func FuzzStripComments(f *testing.F) {
	f.Add("a //x\nb")
	f.Add("a/*x*/b")
	f.Add("let x = 1 + 1;")
	f.Add("/* unterminated")

	f.Fuzz(func(t *testing.T, src string) {
		out, err := StripComments(src)
		if err != nil {
			t.Skip() // pattern engine unavailable
		}
		// Stripping only ever removes bytes.
		if len(out) > len(src) {
			t.Errorf("stripped output grew: %d > %d for %q", len(out), len(src), src)
		}
		if src == out {
			return
		}
		// Anything removed must have started at a comment marker.
		if !strings.Contains(src, "//") && !strings.Contains(src, "/*") {
			t.Errorf("bytes removed from comment-free input %q: %q", src, out)
		}
	})
}
