package diag

import (
	"testing"

	"github.com/brslang/brsc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestSinkOrdersBySpan(t *testing.T) {
	sink := NewSink()
	sink.Errorf(KindUnexpectedToken, token.Span{Line: 1, StartCol: 0, EndCol: 0}, "second")
	sink.Errorf(KindUnexpectedToken, token.Span{Line: 0, StartCol: 5, EndCol: 5}, "first")

	all := sink.All()
	if len(all) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(all))
	}
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, "second", all[1].Message)
}

func TestSinkHasErrors(t *testing.T) {
	sink := NewSink()
	assert.False(t, sink.HasErrors())

	sink.Warnf(KindUnknownIdent, token.Span{}, "unknown identifier %q", "x")
	assert.False(t, sink.HasErrors(), "a warning alone must not suppress codegen")

	sink.Errorf(KindTypeMismatch, token.Span{}, "type mismatch")
	assert.True(t, sink.HasErrors())
}

func TestRenderIncludesFileAndCaret(t *testing.T) {
	source := "x = 1 && true"
	sink := NewSink()
	sink.Errorf(KindTypeMismatch, token.Span{Line: 0, StartCol: 6, EndCol: 7}, "logical operator && requires Boolean operands")

	out := Render("prog.brs", source, sink.All(), false)
	assert.Contains(t, out, "prog.brs:1:7")
	assert.Contains(t, out, "x = 1 && true")
	assert.Contains(t, out, "^^")
}

func TestRenderJSONRoundTripsThroughGJSON(t *testing.T) {
	sink := NewSink()
	sink.Errorf(KindMissingOperand, token.Span{Line: 2, StartCol: 1, EndCol: 1}, "missing operand for +")
	sink.Warnf(KindUnknownIdent, token.Span{Line: 3, StartCol: 0, EndCol: 0}, "unknown identifier %q", "y")

	out, err := RenderJSON("prog.brs", sink.All())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	assert.Equal(t, "prog.brs", gjson.Get(out, "file").String())
	assert.Equal(t, int64(2), gjson.Get(out, "diagnostics.#").Int())
	assert.Equal(t, "ErrMissingOperand", gjson.Get(out, "diagnostics.0.kind").String())
	assert.Equal(t, "error", gjson.Get(out, "diagnostics.0.severity").String())
	assert.Equal(t, "warning", gjson.Get(out, "diagnostics.1.severity").String())
	assert.Equal(t, `unknown identifier "y"`, gjson.Get(out, "diagnostics.1.message").String())
}
