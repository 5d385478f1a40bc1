package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Illegal, "ILLEGAL"},
		{Id, "IDENT"},
		{Number, "NUMBER"},
		{Boolean, "BOOLEAN"},
		{Exit, "EXIT"},
		{Print, "PRINT"},
		{Operator, "OPERATOR"},
		{Newline, "NEWLINE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperatorPrecedenceTable(t *testing.T) {
	tests := []struct {
		op    OperatorKind
		prec  int
		assoc Associativity
	}{
		{Plus, 0, Left},
		{Minus, 0, Left},
		{And, 0, Left},
		{Or, 0, Left},
		{Xor, 0, Left},
		{Multiply, 1, Left},
		{Divide, 1, Left},
		{Modulo, 1, Left},
		{Exponent, 2, Right},
		{Not, 3, Right},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.Precedence(); got != tt.prec {
				t.Errorf("Precedence() = %d, want %d", got, tt.prec)
			}
			if got := tt.op.Associativity(); got != tt.assoc {
				t.Errorf("Associativity() = %v, want %v", got, tt.assoc)
			}
		})
	}
}

func TestOperatorKindIsLogical(t *testing.T) {
	logical := []OperatorKind{And, Or, Xor, Not}
	for _, op := range logical {
		if !op.IsLogical() {
			t.Errorf("%s.IsLogical() = false, want true", op)
		}
	}

	arithmetic := []OperatorKind{Plus, Minus, Multiply, Divide, Modulo, Exponent}
	for _, op := range arithmetic {
		if op.IsLogical() {
			t.Errorf("%s.IsLogical() = true, want false", op)
		}
	}
}

func TestOperatorKindIsUnary(t *testing.T) {
	if !Not.IsUnary() {
		t.Errorf("Not.IsUnary() = false, want true")
	}
	for _, op := range []OperatorKind{Plus, Minus, Multiply, Divide, Modulo, Exponent, And, Or, Xor} {
		if op.IsUnary() {
			t.Errorf("%s.IsUnary() = true, want false", op)
		}
	}
}

func TestTokenLexeme(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"identifier", Token{Kind: Id, Name: "foo"}, "foo"},
		{"number", Token{Kind: Number, Literal: "123"}, "123"},
		{"bool true", Token{Kind: Boolean, BoolValue: true}, "true"},
		{"bool false", Token{Kind: Boolean, BoolValue: false}, "false"},
		{"operator", Token{Kind: Operator, Op: Plus}, "+"},
		{"exit keyword", Token{Kind: Exit}, "exit"},
		{"print keyword", Token{Kind: Print}, "print"},
		{"open call bracket", Token{Kind: OpenBracket}, "("},
		{"closed call bracket", Token{Kind: ClosedBracket}, ")"},
		{"open curly", Token{Kind: OpenCurlyBracket}, "{"},
		{"closed curly", Token{Kind: ClosedCurlyBracket}, "}"},
		{"equals", Token{Kind: Equals}, "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.Lexeme(); got != tt.want {
				t.Errorf("Lexeme() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanJoin(t *testing.T) {
	a := NewSpan(0, 0, 3)
	b := NewSpan(0, 4, 1)
	got := a.Join(b)
	want := Span{Line: 0, StartCol: 0, EndCol: 4}
	if got != want {
		t.Errorf("Join() = %+v, want %+v", got, want)
	}
}

func TestSpanJoinPanicsOnDifferentLines(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic joining spans on different lines")
		}
	}()
	a := NewSpan(0, 0, 1)
	b := NewSpan(1, 0, 1)
	a.Join(b)
}
