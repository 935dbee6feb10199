package ski

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/skilang/ski/ast"
	"github.com/skilang/ski/token"
)

func TestLex(t *testing.T) {
	tokens, err := Lex("let x = 1 + 1; // sum")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}

	expected := []token.Type{
		token.LET, token.IDENT, token.ASSIGN,
		token.INT, token.ADD, token.INT, token.SEMICOLON,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(expected), tokens)
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token %d: got %v, want %v", i, tok.Type, expected[i])
		}
	}
}

func TestStripComments(t *testing.T) {
	got, err := StripComments("a /* b */ c // d")
	if err != nil {
		t.Fatalf("StripComments error: %v", err)
	}
	if got != "a  c " {
		t.Errorf("got %q, want %q", got, "a  c ")
	}
}

func TestTranspile(t *testing.T) {
	root := &ast.VarDecl{Name: "x", Value: &ast.IntLit{Value: 1}}

	out, err := Transpile(root, nil)
	if err != nil {
		t.Fatalf("Transpile error: %v", err)
	}
	if out != "set x=1\n" {
		t.Errorf("got %q, want %q", out, "set x=1\n")
	}
}

func TestTranspileUnsupportedTarget(t *testing.T) {
	root := &ast.VarDecl{Name: "x", Value: &ast.IntLit{Value: 1}}

	out, err := Transpile(root, &Config{Target: ast.Bash})
	if err == nil {
		t.Fatalf("Transpile returned %q, want error", out)
	}
	if _, ok := IsUnsupported(err); !ok {
		t.Errorf("error %v not recognized by IsUnsupported", err)
	}
}

func TestMustTranspilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTranspile did not panic on unsupported node")
		}
	}()
	MustTranspile(&ast.ReturnStmt{}, nil)
}

func TestScriptText(t *testing.T) {
	root := &ast.VarDecl{Name: "x", Value: &ast.IntLit{Value: 1}}

	script, err := NewScript(root, nil)
	if err != nil {
		t.Fatalf("NewScript error: %v", err)
	}

	expected := "@echo off\n" +
		"REM AUTO-GENERATED FILE. DO NOT MODIFY.\n" +
		"REM This file was automatically generated by the ski compiler.\n" +
		"set x=1\n" +
		"@echo on"
	if got := script.Text(); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
	if script.Body() != "set x=1\n" {
		t.Errorf("Body() = %q", script.Body())
	}
	if script.Target() != ast.Batch {
		t.Errorf("Target() = %v", script.Target())
	}
}

func TestScriptCustomNotice(t *testing.T) {
	root := &ast.FuncCall{Name: "go"}

	script, err := NewScript(root, &Config{Notice: []string{"one", "two"}})
	if err != nil {
		t.Fatalf("NewScript error: %v", err)
	}

	expected := "@echo off\nREM one\nREM two\nCALL :go\n@echo on"
	if got := script.Text(); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestScriptWriteTo(t *testing.T) {
	root := &ast.VarDecl{Name: "x", Value: &ast.IntLit{Value: 1}}
	script, err := NewScript(root, nil)
	if err != nil {
		t.Fatalf("NewScript error: %v", err)
	}

	var buf bytes.Buffer
	n, err := script.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}
	if buf.String() != script.Text() {
		t.Errorf("WriteTo wrote %q, Text is %q", buf.String(), script.Text())
	}
	if n != int64(len(script.Text())) {
		t.Errorf("WriteTo reported %d bytes, want %d", n, len(script.Text()))
	}
}

func TestScriptWriteFile(t *testing.T) {
	root := &ast.VarDecl{Name: "x", Value: &ast.IntLit{Value: 1}}
	script, err := NewScript(root, nil)
	if err != nil {
		t.Fatalf("NewScript error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.bat")
	if err := script.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != script.Text() {
		t.Errorf("file contents %q, want %q", data, script.Text())
	}
}

// Generating over an existing output replaces it entirely.
func TestScriptWriteFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bat")
	if err := os.WriteFile(path, []byte("stale contents that are much longer than the script"), 0o644); err != nil {
		t.Fatal(err)
	}

	script, err := NewScript(&ast.FuncCall{Name: "go"}, &Config{Notice: []string{}})
	if err != nil {
		t.Fatalf("NewScript error: %v", err)
	}
	if err := script.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "@echo off\nCALL :go\n@echo on" {
		t.Errorf("file contents %q", data)
	}
}

func TestNewScriptRenderFailure(t *testing.T) {
	script, err := NewScript(&ast.WhileLoop{Cond: &ast.IntLit{Value: 1}, Body: &ast.Block{}}, nil)
	if err == nil {
		t.Fatalf("NewScript returned %v, want error", script)
	}
	node, ok := IsUnsupported(err)
	if !ok {
		t.Fatalf("error %v not recognized by IsUnsupported", err)
	}
	if node != "while loop" {
		t.Errorf("node = %q, want %q", node, "while loop")
	}
}

func TestIsUnsupportedMiss(t *testing.T) {
	if node, ok := IsUnsupported(errors.New("boom")); ok {
		t.Errorf("IsUnsupported matched %q on unrelated error", node)
	}
	if IsPatternError(errors.New("boom")) {
		t.Error("IsPatternError matched unrelated error")
	}
}
