// Package lexer provides ski source code tokenization.
//
// Scanning is a single sequential pass: comments are stripped first
// (see StripComments), then a three-state character scanner turns the
// remaining text into an ordered token sequence. A Lexer is strictly
// sequential and not reentrant across concurrent inputs.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/skilang/ski/token"
)

// Token represents a scanned token with its position and value.
// Tokens are immutable once created; equality is structural.
type Token struct {
	Type token.Type
	// Pos is the scanner position at the moment the token was completed,
	// not where it started. Consumers needing start offsets must not rely
	// on it.
	Pos   token.Position
	Value string // Source text (digits only for INT, no 0x prefix)
	Num   uint64 // Parsed value for INT tokens
}

// Literal returns the constant value carried by a literal token.
// Returns false for non-literal tokens (identifiers included).
func (t Token) Literal() (token.Literal, bool) {
	switch t.Type {
	case token.INT:
		return token.Literal{Kind: token.INT, Int: t.Num}, true
	case token.STRING:
		return token.Literal{Kind: token.STRING, Str: t.Value}, true
	case token.BOOL:
		return token.Literal{Kind: token.BOOL, Bool: t.Value == "true"}, true
	default:
		return token.Literal{}, false
	}
}

// scanner states
type state uint8

const (
	stateNormal state = iota
	stateString       // inside a "..." literal
	stateInt          // inside an integer literal
)

// Lexer tokenizes ski source code.
type Lexer struct {
	pos     token.Position // Current position, copied into emitted tokens
	state   state
	base    int    // Integer literal base, 10 or 16
	pending string // Accumulated identifier/operator/literal text
	tokens  []Token
}

// New creates a new Lexer.
func New() *Lexer {
	return &Lexer{base: 10}
}

// Lex is a convenience function scanning src with a fresh Lexer.
func Lex(src string) ([]Token, error) {
	return New().Lex(src)
}

// Lex strips comments from src and scans the result into an ordered
// token sequence. The only error surface is a *PatternError propagated
// unchanged from StripComments; the scanner itself does not fail.
func (l *Lexer) Lex(src string) ([]Token, error) {
	input, err := StripComments(src)
	if err != nil {
		return nil, err
	}

	l.tokens = make([]Token, 0, 40)
	for _, c := range input {
		l.pos.Col++
		l.step(c)
	}
	l.flushEOF()
	return l.tokens, nil
}

// step dispatches one character through the current state.
func (l *Lexer) step(c rune) {
	switch l.state {
	case stateString:
		if c == '"' {
			l.emit(Token{Type: token.STRING, Pos: l.pos, Value: l.pending})
			l.pending = ""
			l.state = stateNormal
			return
		}
		// Verbatim, no escape processing.
		l.pending += string(c)
		return

	case stateInt:
		switch {
		case isDigit(c):
			l.pending += string(c)
			return
		case isHexLetter(c):
			if l.base != 16 {
				panic(fmt.Sprintf("lexer: hex digit %q in base-%d literal at %s", c, l.base, l.pos))
			}
			l.pending += string(c)
			return
		case c == 'x':
			// 0x prefix: only valid immediately after a single leading 0.
			if len(l.pending) != 1 {
				panic(fmt.Sprintf("lexer: misplaced 'x' in integer literal at %s", l.pos))
			}
			l.pending = ""
			l.base = 16
			return
		default:
			// Any other character closes the literal and is then
			// re-dispatched through the normal rules below.
			l.emitInt()
		}
	}

	l.normal(c)
}

// normal handles one character in the Normal state.
func (l *Lexer) normal(c rune) {
	switch c {
	case ' ', '\r', '\t':
		l.flush()

	case '\n':
		l.flush()
		l.pos.Row++
		l.pos.Col = 0

	case '{', '}', '(', ')', ';', '^':
		l.flush()
		l.emit(l.classify(string(c)))

	case '+', '-':
		// Held back one character for compound-assignment detection.
		l.flush()
		l.pending = string(c)

	case '"':
		// The opening quote is discarded; nothing is flushed.
		l.state = stateString

	case '=':
		switch l.pending {
		case "=", "+", "-", "*", "/", "<", ">":
			l.emit(l.classify(l.pending + "="))
			l.pending = ""
		default:
			l.flush()
			l.pending = "="
		}

	case '&', '|', '*', '/', '>', '<':
		l.double(c)

	default:
		if isDigit(c) {
			l.flush()
			l.state = stateInt
			l.pending = string(c)
			return
		}
		// A held bare operator cannot extend into an identifier;
		// flush it before accumulating.
		switch l.pending {
		case "=", "&", "|", "*", "/", "<", ">", "+", "-":
			l.flush()
		}
		l.pending += string(c)
	}
}

// double implements deferred one-character lookback for doubled
// operators (&&, ||, **, //, >>, <<). Doubling requires adjacency:
// any separator flushes the held character as its single form.
func (l *Lexer) double(c rune) {
	s := string(c)
	if l.pending == s {
		l.emit(l.classify(s + s))
		l.pending = ""
		return
	}
	l.flush()
	l.pending = s
}

// flush emits the pending buffer as a classified token, if any.
func (l *Lexer) flush() {
	if l.pending == "" {
		return
	}
	l.emit(l.classify(l.pending))
	l.pending = ""
}

// flushEOF flushes whatever remains pending at end of input, exactly
// as if a terminating whitespace character had been seen.
func (l *Lexer) flushEOF() {
	switch l.state {
	case stateInt:
		l.emitInt()
	case stateString:
		l.emit(Token{Type: token.STRING, Pos: l.pos, Value: l.pending})
		l.pending = ""
		l.state = stateNormal
	default:
		l.flush()
	}
}

// emitInt parses the pending digits in the current base and emits an
// integer token. A parse failure is an internal fault, not a
// recoverable error: it must never become a wrong token.
func (l *Lexer) emitInt() {
	n, err := strconv.ParseUint(l.pending, l.base, 64)
	if err != nil {
		panic(fmt.Sprintf("lexer: malformed base-%d integer literal %q at %s", l.base, l.pending, l.pos))
	}
	l.emit(Token{Type: token.INT, Pos: l.pos, Value: l.pending, Num: n})
	l.base = 10
	l.pending = ""
	l.state = stateNormal
}

func (l *Lexer) classify(text string) Token {
	return Token{Type: token.Lookup(text), Pos: l.pos, Value: text}
}

func (l *Lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

// Helper functions

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexLetter(c rune) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
