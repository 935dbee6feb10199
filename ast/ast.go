// Package ast defines the abstract syntax tree for ski programs and its
// code-generation framework.
//
// The tree is a closed set of expression nodes (ski is expression
// oriented: declarations, control flow, and blocks are all Expr).
// Composite nodes exclusively own their children; nodes are immutable
// after construction and consumed read-only during rendering.
//
// Code generation is the Render capability implemented by every node
// type: a pure, recursive, depth-first walk that renders children
// before composing the parent's text. The Target parameter selects the
// output dialect; only the DOS batch dialect is implemented. Rendering
// a node kind or dialect without an implemented renderer returns
// *UnsupportedError, never silent wrong output.
package ast

import "fmt"

// Target selects the output dialect for code generation.
type Target uint8

const (
	// Batch is the DOS batch dialect, the only implemented target.
	Batch Target = iota
	// Assembly, Bash, and PowerShell are reserved dialect slots.
	// Rendering them fails with *UnsupportedError.
	Assembly
	Bash
	PowerShell
)

var targetNames = [...]string{
	Batch:      "batch",
	Assembly:   "assembly",
	Bash:       "bash",
	PowerShell: "powershell",
}

// String returns the dialect name.
func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "<unknown>"
}

// ParseTarget returns the Target named by s.
func ParseTarget(s string) (Target, error) {
	for t, name := range targetNames {
		if s == name {
			return Target(t), nil
		}
	}
	return 0, fmt.Errorf("ast: unknown target dialect %q", s)
}

// Expr is the interface implemented by all AST nodes.
type Expr interface {
	// Render produces target-dialect text for the subtree rooted at
	// this node. It is pure and deterministic given the same tree and
	// target.
	Render(t Target) (string, error)

	exprNode() // marker method to prevent external implementations
}

// UnsupportedError reports that a node kind or target dialect has no
// implemented renderer. Unimplemented language features must be visibly
// unimplemented rather than miscompiled.
type UnsupportedError struct {
	Node   string // Node kind, e.g. "return"
	Target Target
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("ast: no %s renderer for %s node", e.Target, e.Node)
}

// unsupported is the shared failure path for unimplemented renderers.
func unsupported(node string, t Target) (string, error) {
	return "", &UnsupportedError{Node: node, Target: t}
}
