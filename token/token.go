// Package token defines lexical tokens for the ski language.
package token

// Type represents a lexical token type.
type Type uint8

const (
	// Special tokens
	ILLEGAL Type = iota

	// Literal classes
	IDENT  // identifier
	INT    // integer literal
	STRING // string literal
	BOOL   // boolean literal

	// Operators and delimiters
	operatorStart
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;

	ASSIGN // =
	EQUALS // ==

	ADD        // +
	SUB        // -
	MUL        // *
	DIV        // /
	POW        // **
	ADD_ASSIGN // +=
	SUB_ASSIGN // -=
	MUL_ASSIGN // *=
	DIV_ASSIGN // /=

	GREATER // >
	LESS    // <
	GTE     // >=
	LTE     // <=
	SHR     // >>
	SHL     // <<

	XOR     // ^
	AND     // &&
	OR      // ||
	BIT_AND // &
	BIT_OR  // |

	SQUOTE // '
	DQUOTE // "
	operatorEnd

	// Keywords
	keywordStart
	FUNCTION // fn
	LET      // let
	CONST    // const
	FOR      // for
	IN       // in
	WHILE    // while
	LOOP     // loop
	RETURN   // return
	IF       // if
	ELSE     // else
	keywordEnd
)

var names = map[Type]string{
	ILLEGAL:    "<illegal>",
	IDENT:      "identifier",
	INT:        "integer",
	STRING:     "string",
	BOOL:       "boolean",
	LBRACE:     "{",
	RBRACE:     "}",
	LPAREN:     "(",
	RPAREN:     ")",
	SEMICOLON:  ";",
	ASSIGN:     "=",
	EQUALS:     "==",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	POW:        "**",
	ADD_ASSIGN: "+=",
	SUB_ASSIGN: "-=",
	MUL_ASSIGN: "*=",
	DIV_ASSIGN: "/=",
	GREATER:    ">",
	LESS:       "<",
	GTE:        ">=",
	LTE:        "<=",
	SHR:        ">>",
	SHL:        "<<",
	XOR:        "^",
	AND:        "&&",
	OR:         "||",
	BIT_AND:    "&",
	BIT_OR:     "|",
	SQUOTE:     "'",
	DQUOTE:     "\"",
	FUNCTION:   "fn",
	LET:        "let",
	CONST:      "const",
	FOR:        "for",
	IN:         "in",
	WHILE:      "while",
	LOOP:       "loop",
	RETURN:     "return",
	IF:         "if",
	ELSE:       "else",
}

// String returns the canonical text of the token type
// (the source spelling for keywords and symbols).
func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "<unknown>"
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Type) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Type) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token is a literal class
// (identifier, integer, string, boolean).
func (t Type) IsLiteral() bool {
	return t == IDENT || t == INT || t == STRING || t == BOOL
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Type{
	"fn":     FUNCTION,
	"let":    LET,
	"const":  CONST,
	"for":    FOR,
	"in":     IN,
	"while":  WHILE,
	"loop":   LOOP,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
}

// symbols maps operator and delimiter spellings to their token types.
var symbols = map[string]Type{
	"{":  LBRACE,
	"}":  RBRACE,
	"(":  LPAREN,
	")":  RPAREN,
	";":  SEMICOLON,
	"=":  ASSIGN,
	"==": EQUALS,
	"+":  ADD,
	"-":  SUB,
	"*":  MUL,
	"/":  DIV,
	"**": POW,
	"+=": ADD_ASSIGN,
	"-=": SUB_ASSIGN,
	"*=": MUL_ASSIGN,
	"/=": DIV_ASSIGN,
	">":  GREATER,
	"<":  LESS,
	">=": GTE,
	"<=": LTE,
	">>": SHR,
	"<<": SHL,
	"^":  XOR,
	"&&": AND,
	"||": OR,
	"&":  BIT_AND,
	"|":  BIT_OR,
	"'":  SQUOTE,
	"\"": DQUOTE,
}

// Lookup returns the token type for a flushed scanner buffer.
// Keywords and symbols take priority; "true" and "false" classify
// as boolean literals; anything else is an identifier.
func Lookup(text string) Type {
	if t, ok := keywords[text]; ok {
		return t
	}
	if t, ok := symbols[text]; ok {
		return t
	}
	if text == "true" || text == "false" {
		return BOOL
	}
	return IDENT
}

// LookupKeyword returns the token type for a keyword, or ILLEGAL if not found.
func LookupKeyword(name string) Type {
	if t, ok := keywords[name]; ok {
		return t
	}
	return ILLEGAL
}

// LookupSymbol returns the token type for a symbol spelling, or ILLEGAL if not found.
func LookupSymbol(text string) Type {
	if t, ok := symbols[text]; ok {
		return t
	}
	return ILLEGAL
}

// Literal is a compile-time constant value carried by a literal token.
// Kind is one of STRING, INT, or BOOL; only the matching value field
// is meaningful.
type Literal struct {
	Kind Type
	Str  string
	Int  uint64
	Bool bool
}
