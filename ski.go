package ski

import (
	"github.com/skilang/ski/ast"
	"github.com/skilang/ski/lexer"
)

// Version is the ski version string.
const Version = "0.1.0"

// Lex tokenizes ski source code. Comments are stripped before scanning;
// the returned error is a *lexer.PatternError if and only if the
// comment-stripping pattern engine could not be constructed.
//
// Example:
//
//	tokens, err := ski.Lex(`let x = 1 + 1;`)
func Lex(src string) ([]lexer.Token, error) {
	return lexer.New().Lex(src)
}

// StripComments removes line and block comments from raw source text.
// Exposed for drivers that preprocess text without scanning it.
func StripComments(src string) (string, error) {
	return lexer.StripComments(src)
}

// Transpile renders a fully formed AST into target-dialect text.
// The tree is assumed syntactically well formed (constructed by an
// external parser) and is consumed read-only.
//
// If config is nil, default configuration is used. Rendering a node
// kind or dialect without an implemented renderer returns an
// *ast.UnsupportedError.
func Transpile(root ast.Expr, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()
	return root.Render(config.Target)
}

// MustTranspile is like Transpile but panics if rendering fails.
// It simplifies initialization of fixed script fragments.
func MustTranspile(root ast.Expr, config *Config) string {
	out, err := Transpile(root, config)
	if err != nil {
		panic(err)
	}
	return out
}
