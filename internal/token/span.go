package token

import "fmt"

// Span locates a lexeme inside the source text: a zero-based line index
// together with the zero-based, code-point start/end columns of the
// lexeme within that line. StartCol and EndCol are both inclusive, so a
// single-character token has StartCol == EndCol.
type Span struct {
	Line     int
	StartCol int
	EndCol   int
}

// NewSpan builds a Span covering [startCol, startCol+width-1] on line.
// width must be at least 1.
func NewSpan(line, startCol, width int) Span {
	if width < 1 {
		width = 1
	}
	return Span{Line: line, StartCol: startCol, EndCol: startCol + width - 1}
}

// Width returns the number of code points the span covers.
func (s Span) Width() int {
	return s.EndCol - s.StartCol + 1
}

// Join returns the smallest span that covers both s and other. The two
// spans must be on the same line; Join panics otherwise since a cross-line
// span has no meaningful column range.
func (s Span) Join(other Span) Span {
	if s.Line != other.Line {
		panic(fmt.Sprintf("token: cannot join spans on different lines (%d, %d)", s.Line, other.Line))
	}
	start := s.StartCol
	if other.StartCol < start {
		start = other.StartCol
	}
	end := s.EndCol
	if other.EndCol > end {
		end = other.EndCol
	}
	return Span{Line: s.Line, StartCol: start, EndCol: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.StartCol, s.EndCol)
}
