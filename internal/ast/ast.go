// Package ast defines Kvazz's abstract syntax tree: a closed sum of 20 node
// kinds. Each node exclusively owns its children; the tree is built once by
// the parser and never mutated during evaluation.
package ast

import "github.com/kvazzlang/kvazz/internal/token"

// Node is implemented by every AST node. String renders the node using the
// display form the "parse" CLI verb prints at the root of its subtree
// (e.g. "BinaryOp +", "Declare x", "int-literal '3'").
type Node interface {
	Pos() token.Position
	String() string
}

// Statement is a Node that appears directly inside a Block or Program.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered sequence of top-level statements.
// Only Declare and FunctionDeclare children are permitted by the parser.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}
func (p *Program) String() string { return "Program" }

// Block is an ordered sequence of statements that introduces a new lexical
// scope when evaluated.
type Block struct {
	Position   token.Position
	Statements []Statement
}

func (b *Block) Pos() token.Position { return b.Position }
func (b *Block) String() string      { return "Block" }
func (b *Block) statementNode()      {}

// Declare binds the result of evaluating Init to Name in the current
// environment: `var <Name> = <Init>;`.
type Declare struct {
	Position token.Position
	Name     string
	Init     Expression
}

func (d *Declare) Pos() token.Position { return d.Position }
func (d *Declare) String() string      { return "Declare " + d.Name }
func (d *Declare) statementNode()      {}

// FunctionDeclare binds a Function value to Name:
// `function <Name>(<Params>) <Body>`.
type FunctionDeclare struct {
	Position token.Position
	Name     string
	Params   []string
	Body     *Block
}

func (f *FunctionDeclare) Pos() token.Position { return f.Position }
func (f *FunctionDeclare) String() string      { return "FunctionDeclare " + f.Name }
func (f *FunctionDeclare) statementNode()      {}

// AssignOp covers both plain and compound assignment:
// `<Target> <Op> <Value>;` where Op is one of = += -= *= /= %=.
type AssignOp struct {
	Position token.Position
	Target   Expression // VariableLookup or Access; validated by the parser
	Op       string
	Value    Expression
}

func (a *AssignOp) Pos() token.Position { return a.Position }
func (a *AssignOp) String() string      { return "AssignOp " + a.Op }
func (a *AssignOp) statementNode()      {}

// Return evaluates Value and re-tags the result with the Return signal,
// short-circuiting the enclosing Block/While/IfThen/IfElse.
type Return struct {
	Position token.Position
	Value    Expression
}

func (r *Return) Pos() token.Position { return r.Position }
func (r *Return) String() string      { return "Return" }
func (r *Return) statementNode()      {}

// ExpressionStatement wraps a FunctionCall used as a statement for its side
// effect, discarding its result: `<Expression>;`. It is the only way an
// Expression may appear directly in a Block's statement list.
type ExpressionStatement struct {
	Position   token.Position
	Expression Expression
}

func (e *ExpressionStatement) Pos() token.Position { return e.Position }
func (e *ExpressionStatement) String() string      { return "ExpressionStatement" }
func (e *ExpressionStatement) statementNode()      {}

// IfThen is `if <Cond> then <Then>` with no else branch.
type IfThen struct {
	Position token.Position
	Cond     Expression
	Then     *Block
}

func (i *IfThen) Pos() token.Position { return i.Position }
func (i *IfThen) String() string      { return "IfThen" }
func (i *IfThen) statementNode()      {}

// IfElse is `if <Cond> then <Then> else <Else>`.
type IfElse struct {
	Position token.Position
	Cond     Expression
	Then     *Block
	Else     *Block
}

func (i *IfElse) Pos() token.Position { return i.Position }
func (i *IfElse) String() string      { return "IfElse" }
func (i *IfElse) statementNode()      {}

// While is `while <Cond> do <Body>`, re-evaluating Cond before each
// iteration.
type While struct {
	Position token.Position
	Cond     Expression
	Body     *Block
}

func (w *While) Pos() token.Position { return w.Position }
func (w *While) String() string      { return "While" }
func (w *While) statementNode()      {}

// BinaryOp is a left-associative binary expression produced by the Pratt
// parser: Op is one of | & == != <= >= < > + - * / %.
type BinaryOp struct {
	Position token.Position
	Op       string
	Left     Expression
	Right    Expression
}

func (b *BinaryOp) Pos() token.Position { return b.Position }
func (b *BinaryOp) String() string      { return "BinaryOp " + b.Op }
func (b *BinaryOp) expressionNode()     {}

// UnaryOp is a prefix expression: Op is one of - or !.
type UnaryOp struct {
	Position token.Position
	Op       string
	Operand  Expression
}

func (u *UnaryOp) Pos() token.Position { return u.Position }
func (u *UnaryOp) String() string      { return "UnaryOp " + u.Op }
func (u *UnaryOp) expressionNode()     {}

// FunctionCall is `<Callee>(<Args>)`, a postfix chain element.
type FunctionCall struct {
	Position token.Position
	Callee   Expression
	Args     []Expression
}

func (f *FunctionCall) Pos() token.Position { return f.Position }
func (f *FunctionCall) String() string      { return "FunctionCall" }
func (f *FunctionCall) expressionNode()     {}

// Access is `<Left>[<Index>]`, the postfix indexing chain element.
type Access struct {
	Position token.Position
	Left     Expression
	Index    Expression
}

func (a *Access) Pos() token.Position { return a.Position }
func (a *Access) String() string      { return "Access" }
func (a *Access) expressionNode()     {}

// VariableLookup is an identifier reference. Global is set when the
// identifier was prefixed with the `$` sigil, forcing resolution against
// the global environment instead of the enclosing lexical scope.
type VariableLookup struct {
	Position token.Position
	Name     string
	Global   bool
}

func (v *VariableLookup) Pos() token.Position { return v.Position }
func (v *VariableLookup) String() string {
	if v.Global {
		return "VariableLookup $" + v.Name
	}
	return "VariableLookup " + v.Name
}
func (v *VariableLookup) expressionNode() {}

// IntLiteral is a 64-bit signed integer literal.
type IntLiteral struct {
	Position token.Position
	Value    int64
}

func (i *IntLiteral) Pos() token.Position { return i.Position }
func (i *IntLiteral) String() string      { return "int-literal '" + itoa(i.Value) + "'" }
func (i *IntLiteral) expressionNode()     {}

// BoolLiteral is a `true` or `false` literal.
type BoolLiteral struct {
	Position token.Position
	Value    bool
}

func (b *BoolLiteral) Pos() token.Position { return b.Position }
func (b *BoolLiteral) String() string {
	if b.Value {
		return "bool-literal 'true'"
	}
	return "bool-literal 'false'"
}
func (b *BoolLiteral) expressionNode() {}

// RealLiteral is an IEEE-754 double literal.
type RealLiteral struct {
	Position token.Position
	Value    float64
}

func (r *RealLiteral) Pos() token.Position { return r.Position }
func (r *RealLiteral) String() string      { return "real-literal '" + ftoa(r.Value) + "'" }
func (r *RealLiteral) expressionNode()     {}

// StringLiteral is a quoted string literal, stored without its delimiters.
type StringLiteral struct {
	Position token.Position
	Value    string
}

func (s *StringLiteral) Pos() token.Position { return s.Position }
func (s *StringLiteral) String() string      { return "string-literal '" + s.Value + "'" }
func (s *StringLiteral) expressionNode()     {}

// VectorLiteral is `[<Elements>]` or `<[<Elements>]>`; both delimiter pairs
// parse identically to a heterogeneous vector.
type VectorLiteral struct {
	Position token.Position
	Elements []Expression
}

func (v *VectorLiteral) Pos() token.Position { return v.Position }
func (v *VectorLiteral) String() string      { return "VectorLiteral" }
func (v *VectorLiteral) expressionNode()     {}
