// Package diag implements the diagnostic sink shared by the parser and
// code generator (spec.md §5, §7, §9): a single, pipeline-owned
// collector rather than the module-global logger spec.md §9 warns
// against, guarded by a mutex so the same sink could in principle be
// shared across a future multi-file driver.
package diag

import (
	"fmt"
	"sort"
	"sync"

	"github.com/brslang/brsc/internal/token"
)

// Kind enumerates the parser error taxonomy of spec.md §7. Codegen's
// one non-fatal diagnostic (unknown identifier) uses KindUnknownIdent.
type Kind int

const (
	KindInvalidStatement Kind = iota
	KindExitOpenBracketMissing
	KindExitClosedBracketMissing
	KindUnexpectedToken
	KindExpressionOpenBracketMissing
	KindExpressionClosedBracketMissing
	KindScopeClosesCurlyBracketMissing
	KindMissingOperand
	KindTypeMismatch
	KindUnknownIdent
)

var kindNames = map[Kind]string{
	KindInvalidStatement:               "ErrInvalidStatement",
	KindExitOpenBracketMissing:         "ErrExitOpenBracketMissing",
	KindExitClosedBracketMissing:       "ErrExitClosedBracketMissing",
	KindUnexpectedToken:                "ErrUnexpectedToken",
	KindExpressionOpenBracketMissing:   "ErrExpressionOpenBracketMissing",
	KindExpressionClosedBracketMissing: "ErrExpressionClosedBracketMissing",
	KindScopeClosesCurlyBracketMissing: "ErrScopeClosesCurlyBracketMissing",
	KindMissingOperand:                 "ErrMissingOperand",
	KindTypeMismatch:                   "ErrTypeMismatch",
	KindUnknownIdent:                   "WarnUnknownIdent",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "ErrUnknown"
}

// Severity distinguishes a hard parser error (which suppresses codegen,
// per spec.md §5) from a non-fatal codegen warning (spec.md §4.3).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is one reported problem, carrying the span of the
// offending construct so a renderer can point at it in source.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Span     token.Span
	Message  string
}

// Sink is the append-only, pipeline-owned diagnostic collector
// described in spec.md §5 and §9. It is safe for concurrent use: a
// future multi-file driver could hand the same *Sink to several
// concurrent compiles (spec.md §9), though this module only ever
// drives one at a time.
type Sink struct {
	mu   sync.Mutex
	diag []Diagnostic
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Report appends a diagnostic. Reports are kept in the order they
// arrive, which callers must produce in left-to-right source order
// (spec.md §5: "order of emission in diagnostics is stable").
func (s *Sink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diag = append(s.diag, d)
}

// Errorf reports an error-severity diagnostic.
func (s *Sink) Errorf(kind Kind, span token.Span, format string, args ...any) {
	s.Report(Diagnostic{Kind: kind, Severity: SeverityError, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Warnf reports a warning-severity diagnostic.
func (s *Sink) Warnf(kind Kind, span token.Span, format string, args ...any) {
	s.Report(Diagnostic{Kind: kind, Severity: SeverityWarning, Span: span, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any error-severity diagnostic was
// reported. spec.md §5: "a single parser error is sufficient to
// suppress codegen".
func (s *Sink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.diag {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns a stable-ordered snapshot of every diagnostic reported so
// far, sorted by span start for deterministic rendering when callers
// reported out of source order (the parser reports an unclosed '{'
// only after the errors in its body, for example). The sort is stable,
// so diagnostics at the same position keep their report order.
func (s *Sink) All() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.diag))
	copy(out, s.diag)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Line != out[j].Span.Line {
			return out[i].Span.Line < out[j].Span.Line
		}
		return out[i].Span.StartCol < out[j].Span.StartCol
	})
	return out
}
