package token

import "fmt"

// Position represents a position in source code.
// The scanner owns a single Position cursor and copies it by value
// into every token it emits.
type Position struct {
	// Row number (0-indexed). Incremented on each newline.
	Row int
	// Col is the character offset on the row (0-indexed).
	// Incremented once per character examined; reset to 0 on newline.
	Col int
}

// String returns a "row:col" representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Before returns true if p is before other in the source.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// After returns true if p is after other in the source.
func (p Position) After(other Position) bool {
	if p.Row != other.Row {
		return p.Row > other.Row
	}
	return p.Col > other.Col
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}
