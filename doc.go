// Package ski provides the front end of the ski-to-script transpiler.
//
// ski turns raw source text of the ski scripting language into a stream
// of typed tokens, and renders pre-built abstract syntax trees into a
// target scripting dialect (currently DOS batch).
//
// # Quick Start
//
// Tokenizing source text:
//
//	tokens, err := ski.Lex(`let x = 1 + 1;`)
//
// Rendering an AST produced by an upstream parser:
//
//	out, err := ski.Transpile(tree, &ski.Config{Target: ast.Batch})
//
// Producing a complete script file:
//
//	script, err := ski.NewScript(tree, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = script.WriteFile("out.bat")
//
// # Scope
//
// Syntactic analysis (token stream to AST) is an external collaborator:
// this module defines the token vocabulary the parser consumes and the
// node set it constructs, but no parser. No semantic analysis is
// performed; trees are assumed well formed.
//
// # Error Handling
//
// Two structured error kinds exist:
//   - [lexer.PatternError]: the comment-stripping pattern engine could
//     not be constructed; propagated verbatim through Lex.
//   - [ast.UnsupportedError]: a node kind or target dialect has no
//     implemented renderer. Unimplemented features fail loudly rather
//     than miscompile.
//
// Use [IsPatternError] and [IsUnsupported] to classify errors.
//
// # Thread Safety
//
// Rendering is a pure tree walk and safe for concurrent use on distinct
// trees. A [lexer.Lexer] instance is strictly sequential; use one per
// input.
package ski
