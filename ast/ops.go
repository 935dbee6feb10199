package ast

import (
	"fmt"

	"github.com/skilang/ski/token"
)

// UnaryOp represents a unary operator kind.
type UnaryOp uint8

const (
	Neg    UnaryOp = iota // -
	Not                   // logical not
	BitNot                // bitwise not
)

// Render returns the operator's text in the target dialect.
func (op UnaryOp) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("unary operator", t)
	}
	switch op {
	case Neg:
		return "-", nil
	case Not:
		return "NOT", nil
	case BitNot:
		return "~", nil
	default:
		return unsupported(fmt.Sprintf("unary operator %d", op), t)
	}
}

// BinaryOp represents a binary operator kind.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Assign
	Eq
	Ne
	Gt
	Lt
	GtEq
	LtEq
	Shr
	Shl
	Xor
	LogAnd
	LogOr
	BitAnd
	BitOr
)

// batchBinaryOps maps operator kinds to batch comparison/arithmetic text.
var batchBinaryOps = [...]string{
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Assign: "EQU",
	Eq:     "==",
	Ne:     "NEQ",
	Gt:     "GTR",
	Lt:     "LSS",
	GtEq:   "GEQ",
	LtEq:   "LEQ",
	Shr:    ">>",
	Shl:    "<<",
	Xor:    "^",
	LogAnd: "&&",
	LogOr:  "||",
	BitAnd: "&",
	BitOr:  "|",
}

// Render returns the operator's text in the target dialect.
func (op BinaryOp) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("binary operator", t)
	}
	if int(op) < len(batchBinaryOps) {
		return batchBinaryOps[op], nil
	}
	return unsupported(fmt.Sprintf("binary operator %d", op), t)
}

// binaryOpTokens maps symbol token types to binary operator kinds.
var binaryOpTokens = map[token.Type]BinaryOp{
	token.ADD:     Add,
	token.SUB:     Sub,
	token.MUL:     Mul,
	token.DIV:     Div,
	token.ASSIGN:  Assign,
	token.EQUALS:  Eq,
	token.GREATER: Gt,
	token.LESS:    Lt,
	token.GTE:     GtEq,
	token.LTE:     LtEq,
	token.SHR:     Shr,
	token.SHL:     Shl,
	token.XOR:     Xor,
	token.AND:     LogAnd,
	token.OR:      LogOr,
	token.BIT_AND: BitAnd,
	token.BIT_OR:  BitOr,
}

// BinaryOpFromToken maps a symbol token type to its binary operator
// kind. A token that does not map to an operator is a construction-time
// error, not a render-time one.
func BinaryOpFromToken(t token.Type) (BinaryOp, error) {
	if op, ok := binaryOpTokens[t]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("ast: token %s is not a binary operator", t)
}
