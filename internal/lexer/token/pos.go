package token

import "fmt"

type Pos struct {
	Filename     string
	Line, Column int
}

func NewPosition(filename string, column, line int) Pos {
	return Pos{Filename: filename, Line: line, Column: column}
}

func (pos *Pos) Move(character byte) {
	if character == '\n' {
		pos.Column = 1
		pos.Line++
	} else {
		pos.Column++
	}
}

// Before reports whether pos comes strictly before other in the same file.
// Positions in different files are ordered by filename.
func (pos Pos) Before(other Pos) bool {
	if pos.Filename != other.Filename {
		return pos.Filename < other.Filename
	}
	if pos.Line != other.Line {
		return pos.Line < other.Line
	}
	return pos.Column < other.Column
}

func (pos Pos) IsZero() bool {
	return pos.Line == 0 && pos.Column == 0
}

func (pos Pos) String() string {
	return fmt.Sprintf("[%s:%d:%d]", pos.Filename, pos.Line, pos.Column)
}
