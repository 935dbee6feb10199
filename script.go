package ski

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/skilang/ski/ast"
)

// Script is a fully rendered output script ready to be written.
// The body is framed by a fixed header (echo suppression plus the
// auto-generation notice) and a trailing echo restore.
type Script struct {
	body   string
	target ast.Target
	notice []string
}

// NewScript renders the AST and wraps it for file output.
// If config is nil, default configuration is used.
func NewScript(root ast.Expr, config *Config) (*Script, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	body, err := root.Render(config.Target)
	if err != nil {
		return nil, err
	}
	return &Script{
		body:   body,
		target: config.Target,
		notice: config.Notice,
	}, nil
}

// Body returns the rendered script body without framing.
func (s *Script) Body() string {
	return s.body
}

// Target returns the dialect the script was rendered for.
func (s *Script) Target() ast.Target {
	return s.target
}

// Text returns the complete framed script.
func (s *Script) Text() string {
	var sb strings.Builder
	s.write(&sb)
	return sb.String()
}

// WriteTo writes the complete framed script to w.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := s.write(cw)
	return cw.n, err
}

// WriteFile writes the script to path, replacing any existing file.
// The write is buffered.
func (s *Script) WriteFile(path string) error {
	os.Remove(path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := s.write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// write emits the header, body, and footer in order.
func (s *Script) write(w io.Writer) error {
	if _, err := io.WriteString(w, "@echo off\n"); err != nil {
		return err
	}
	for _, line := range s.notice {
		if _, err := io.WriteString(w, "REM "+line+"\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, s.body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "@echo on")
	return err
}

// countWriter tracks bytes written for the io.WriterTo contract.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
