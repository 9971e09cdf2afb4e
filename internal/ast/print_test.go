package ast

import (
	"strings"
	"testing"

	"github.com/kvazzlang/kvazz/internal/token"
)

func TestPrintRendersBinaryOpChildren(t *testing.T) {
	n := &BinaryOp{
		Op:   "+",
		Left: &IntLiteral{Value: 1},
		Right: &BinaryOp{
			Op:    "*",
			Left:  &IntLiteral{Value: 2},
			Right: &IntLiteral{Value: 3},
		},
	}

	var sb strings.Builder
	Print(&sb, n)
	out := sb.String()

	if !strings.HasPrefix(out, "BinaryOp +\n") {
		t.Fatalf("expected root line, got %q", out)
	}
	if !strings.Contains(out, "int-literal '1'") {
		t.Errorf("missing left literal: %q", out)
	}
	if !strings.Contains(out, "BinaryOp *") {
		t.Errorf("missing nested BinaryOp: %q", out)
	}
}

func TestPrintMarksLastChildWithDifferentConnector(t *testing.T) {
	n := &Block{
		Statements: []Statement{
			&Declare{Name: "a", Init: &IntLiteral{Value: 1}},
			&Declare{Name: "b", Init: &IntLiteral{Value: 2}},
		},
	}

	var sb strings.Builder
	Print(&sb, n)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")

	if !strings.HasPrefix(lines[1], "|- ") {
		t.Errorf("expected first child to use |- connector, got %q", lines[1])
	}
	lastTop := -1
	for i, l := range lines {
		if strings.HasPrefix(l, "`- ") {
			lastTop = i
		}
	}
	if lastTop == -1 {
		t.Errorf("expected a `- connector somewhere, got:\n%s", sb.String())
	}
}

func TestExpressionStatementPrintsItsWrappedExpression(t *testing.T) {
	n := &ExpressionStatement{
		Expression: &FunctionCall{
			Callee: &VariableLookup{Name: "print"},
			Args:   []Expression{&IntLiteral{Value: 1}},
		},
	}

	var sb strings.Builder
	Print(&sb, n)
	out := sb.String()
	if !strings.Contains(out, "FunctionCall") {
		t.Errorf("expected the wrapped FunctionCall to print, got %q", out)
	}
	if !strings.Contains(out, "VariableLookup print") {
		t.Errorf("expected the callee to print, got %q", out)
	}
}

func TestLiteralStringFormsMatchDisplayVocabulary(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{&IntLiteral{Value: 42}, "int-literal '42'"},
		{&RealLiteral{Value: 1.5}, "real-literal '1.5'"},
		{&BoolLiteral{Value: true}, "bool-literal 'true'"},
		{&BoolLiteral{Value: false}, "bool-literal 'false'"},
		{&StringLiteral{Value: "hi"}, "string-literal 'hi'"},
		{&VariableLookup{Name: "x"}, "VariableLookup x"},
		{&VariableLookup{Name: "x", Global: true}, "VariableLookup $x"},
	}
	for _, c := range cases {
		if got := c.node.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestProgramPosFallsBackWhenEmpty(t *testing.T) {
	p := &Program{}
	if pos := p.Pos(); pos != (token.Position{Line: 1, Column: 1}) {
		t.Errorf("expected default position, got %v", pos)
	}
}
