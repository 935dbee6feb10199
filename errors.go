package ski

import (
	"errors"

	"github.com/skilang/ski/ast"
	"github.com/skilang/ski/lexer"
)

// IsPatternError reports whether err is (or wraps) a pattern-engine
// construction failure from the comment stripper.
func IsPatternError(err error) bool {
	var pe *lexer.PatternError
	return errors.As(err, &pe)
}

// IsUnsupported reports whether err is (or wraps) an unsupported-rendering
// failure, and returns the node kind that could not be rendered.
// Returns ("", false) otherwise.
func IsUnsupported(err error) (string, bool) {
	var ue *ast.UnsupportedError
	if errors.As(err, &ue) {
		return ue.Node, true
	}
	return "", false
}
