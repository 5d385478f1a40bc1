package parser

import "github.com/brslang/brsc/internal/token"

// splitLines partitions a token stream into the "lines" spec.md §4.2
// describes: a line ends at a Newline, at an OpenCurlyBracket
// (inclusive — the brace is the last token of that line), or is itself
// a single ClosedCurlyBracket. Whitespace and Newline tokens are
// dropped from the output; they have served their purpose as
// delimiters (spec.md §3 invariant 2).
func splitLines(tokens []token.Token) [][]token.Token {
	var lines [][]token.Token
	var current []token.Token

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, current)
			current = nil
		}
	}

	for _, t := range tokens {
		switch t.Kind {
		case token.Whitespace:
			// stripped before parsing, per spec.md §3 invariant 2.
			continue
		case token.Newline:
			flush()
		case token.OpenCurlyBracket:
			current = append(current, t)
			flush()
		case token.ClosedCurlyBracket:
			flush()
			lines = append(lines, []token.Token{t})
		default:
			current = append(current, t)
		}
	}
	flush()

	return lines
}
