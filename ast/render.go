package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Render returns the integer's literal text.
func (e *IntLit) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("integer constant", t)
	}
	return strconv.FormatUint(e.Value, 10), nil
}

// Render returns the string's literal text.
func (e *StrLit) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("string constant", t)
	}
	return e.Value, nil
}

// Render returns the bare variable name.
func (e *VarRef) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("variable reference", t)
	}
	return e.Name, nil
}

// Render on a literal wrapper has no implemented renderer.
func (e *LitExpr) Render(t Target) (string, error) {
	return unsupported("literal", t)
}

// Render produces the operator text followed immediately by the child's
// text, with no separator.
func (e *UnaryExpr) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("unary expression", t)
	}
	op, err := e.Op.Render(t)
	if err != nil {
		return "", err
	}
	child, err := e.Child.Render(t)
	if err != nil {
		return "", err
	}
	return op + child, nil
}

// Render interpolates both operands as batch variable expansions around
// the operator text. This is a textual-template contract: operands are
// stringified and embedded inside %...% placeholders, never evaluated.
func (e *BinaryExpr) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("binary expression", t)
	}
	left, err := e.Left.Render(t)
	if err != nil {
		return "", err
	}
	op, err := e.Op.Render(t)
	if err != nil {
		return "", err
	}
	right, err := e.Right.Render(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\"%%%s%%\" %s \"%%%s%%\"", left, op, right), nil
}

// Render produces an assignment statement binding the name to the
// rendered initializer, terminated by a line break.
func (e *VarDecl) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("variable declaration", t)
	}
	value, err := e.Value.Render(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("set %s=%s\n", e.Name, value), nil
}

// Render on a constant declaration has no implemented renderer.
func (e *ConstDecl) Render(t Target) (string, error) {
	return unsupported("constant declaration", t)
}

// Render on a function definition has no implemented renderer.
func (e *FuncDef) Render(t Target) (string, error) {
	return unsupported("function definition", t)
}

// Render produces an IF ( then ) ELSE ( else ) block. Both branches are
// always present and always rendered.
func (e *IfExpr) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("conditional", t)
	}
	cond, err := e.Cond.Render(t)
	if err != nil {
		return "", err
	}
	then, err := e.Then.Render(t)
	if err != nil {
		return "", err
	}
	els, err := e.Else.Render(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("If %s ( \n %s ) \n ELSE ( %s \n ) \n", cond, then, els), nil
}

// Render on a while loop has no implemented renderer.
func (e *WhileLoop) Render(t Target) (string, error) {
	return unsupported("while loop", t)
}

// Render produces a label, the rendered body, and an unconditional jump
// back to the label, in that order. There is no implicit exit.
func (e *Loop) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("loop", t)
	}
	body, err := e.Body.Render(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(":LOOP\n%s\ngoto :LOOP", body), nil
}

// Render produces the batch-native iteration construct
// FOR %%item IN (set) DO command.
func (e *ForIn) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("for-each loop", t)
	}
	container, err := e.Container.Render(t)
	if err != nil {
		return "", err
	}
	body, err := e.Body.Render(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("FOR %%%%%s IN %s DO (\n%s)\n", e.Item, container, body), nil
}

// Render on a continue statement has no implemented renderer.
func (e *ContinueStmt) Render(t Target) (string, error) {
	return unsupported("continue", t)
}

// Render on a break statement has no implemented renderer.
func (e *BreakStmt) Render(t Target) (string, error) {
	return unsupported("break", t)
}

// Render on a return statement has no implemented renderer.
func (e *ReturnStmt) Render(t Target) (string, error) {
	return unsupported("return", t)
}

// Render produces a batch subroutine call with the rendered arguments
// space-separated after the label, terminated by a line break.
func (e *FuncCall) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("function call", t)
	}
	if len(e.Args) == 0 {
		return fmt.Sprintf("CALL :%s\n", e.Name), nil
	}
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		text, err := arg.Render(t)
		if err != nil {
			return "", err
		}
		args[i] = text
	}
	return fmt.Sprintf("CALL :%s %s\n", e.Name, strings.Join(args, " ")), nil
}

// Render produces each child's rendered text, one per output line, in
// stored order.
func (e *Block) Render(t Target) (string, error) {
	if t != Batch {
		return unsupported("block", t)
	}
	lines := make([]string, len(e.List))
	for i, child := range e.List {
		text, err := child.Render(t)
		if err != nil {
			return "", err
		}
		lines[i] = text
	}
	return strings.Join(lines, "\n"), nil
}
