package lexer

import (
	"fmt"

	"github.com/coregx/coregex"
)

// Comment patterns. The block pattern requires a closing */, so an
// unterminated block comment is left in place; a line comment without a
// trailing newline consumes to end of input.
const (
	blockCommentPattern = `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`
	lineCommentPattern  = `//[^\n\r]*`
)

// PatternError indicates that a comment-stripping pattern could not be
// compiled. This is an environment-level fault of the pattern engine,
// not a property of the source text.
type PatternError struct {
	Pattern string // Pattern that failed to compile
	Err     error  // Underlying engine error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("lexer: cannot compile comment pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// StripComments removes line and block comments from raw source text,
// leaving all other bytes intact. Block comments are removed before line
// comments, so a // marker inside a block comment is never separately
// interpreted. Returns a *PatternError if the pattern engine cannot be
// constructed.
func StripComments(src string) (string, error) {
	block, err := coregex.Compile(blockCommentPattern)
	if err != nil {
		return "", &PatternError{Pattern: blockCommentPattern, Err: err}
	}
	line, err := coregex.Compile(lineCommentPattern)
	if err != nil {
		return "", &PatternError{Pattern: lineCommentPattern, Err: err}
	}
	return line.ReplaceAllString(block.ReplaceAllString(src, ""), ""), nil
}
