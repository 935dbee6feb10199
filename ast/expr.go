package ast

import "github.com/skilang/ski/token"

// -----------------------------------------------------------------------------
// Constants and references
// -----------------------------------------------------------------------------

// IntLit represents an integer constant.
// Examples: 42, 31 (from 0x1F)
type IntLit struct {
	Value uint64
}

// StrLit represents a string constant.
// Example: "hello"
type StrLit struct {
	Value string
}

// VarRef represents a variable reference by name.
// Example: x
type VarRef struct {
	Name string
}

// LitExpr wraps a scanned literal value as an expression.
type LitExpr struct {
	Value token.Literal
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// UnaryExpr represents a unary operation with one child.
// Example: -x
type UnaryExpr struct {
	Op    UnaryOp
	Child Expr
}

// BinaryExpr represents a binary operation.
// Example: a + b
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// VarDecl represents a variable declaration with an initializer.
// Example: let x = 1 + 1
type VarDecl struct {
	Name  string
	Value Expr
}

// ConstDecl represents a constant declaration.
// Example: const x = 1
type ConstDecl struct {
	Name  string
	Value Expr
}

// FuncDef represents a function definition.
// Example: fn hi(a, b) { ... }
type FuncDef struct {
	Name   string
	Params []string
	Body   Expr
}

// -----------------------------------------------------------------------------
// Control flow
// -----------------------------------------------------------------------------

// IfExpr represents a conditional. Both branches are always present;
// a producer must supply a no-op placeholder branch when the source
// program omits an else.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// WhileLoop represents a condition-guarded loop.
type WhileLoop struct {
	Cond Expr
	Body Expr
}

// Loop represents a bare, unconditional loop. Termination is the
// responsibility of break/continue nodes in the body.
type Loop struct {
	Body Expr
}

// ForIn represents a for-each loop binding Item over a container.
// Example: for x in xs { ... }
type ForIn struct {
	Item      string
	Container Expr
	Body      Expr
}

// ContinueStmt represents a continue statement.
type ContinueStmt struct{}

// BreakStmt represents a break statement.
type BreakStmt struct{}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	Value Expr
}

// -----------------------------------------------------------------------------
// Calls and blocks
// -----------------------------------------------------------------------------

// FuncCall represents a call to a named function.
// Example: print("hi")
type FuncCall struct {
	Name string
	Args []Expr
}

// Block represents an ordered sequence of expressions evaluated
// sequentially for their effects. Order is semantically meaningful and
// is preserved end-to-end through rendering.
type Block struct {
	List []Expr
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all node types implement the Expr interface.
var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*VarRef)(nil)
	_ Expr = (*LitExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*VarDecl)(nil)
	_ Expr = (*ConstDecl)(nil)
	_ Expr = (*FuncDef)(nil)
	_ Expr = (*IfExpr)(nil)
	_ Expr = (*WhileLoop)(nil)
	_ Expr = (*Loop)(nil)
	_ Expr = (*ForIn)(nil)
	_ Expr = (*ContinueStmt)(nil)
	_ Expr = (*BreakStmt)(nil)
	_ Expr = (*ReturnStmt)(nil)
	_ Expr = (*FuncCall)(nil)
	_ Expr = (*Block)(nil)
)

func (*IntLit) exprNode()       {}
func (*StrLit) exprNode()       {}
func (*VarRef) exprNode()       {}
func (*LitExpr) exprNode()      {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*VarDecl) exprNode()      {}
func (*ConstDecl) exprNode()    {}
func (*FuncDef) exprNode()      {}
func (*IfExpr) exprNode()       {}
func (*WhileLoop) exprNode()    {}
func (*Loop) exprNode()         {}
func (*ForIn) exprNode()        {}
func (*ContinueStmt) exprNode() {}
func (*BreakStmt) exprNode()    {}
func (*ReturnStmt) exprNode()   {}
func (*FuncCall) exprNode()     {}
func (*Block) exprNode()        {}
