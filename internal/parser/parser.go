// Package parser implements Kvazz's grammar using recursive descent with
// Pratt precedence climbing for expressions, grounded on go-dws's
// internal/parser (a Cursor for lookahead and a precedence table; prefix
// forms are dispatched by a switch in parsePrimary, not by
// prefixParseFn/infixParseFn maps). Kvazz's grammar has no error-recovery production
// (spec.md §4.2's `error()` aborts immediately), so, unlike go-dws's
// synchronize()-based recovery, a parse error here unwinds the whole parse
// via panic/recover rather than threading an error-state check through
// every production.
package parser

import (
	"fmt"

	"github.com/kvazzlang/kvazz/internal/ast"
	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/token"
)

// Precedence levels, lowest to highest, per spec.md §4.2's binding-power
// table.
const (
	lowest int = iota
	orAnd      // | &
	compare    // == != <= >= < >
	sum        // + -
	product    // * / %
)

var precedences = map[string]int{
	"|": orAnd, "&": orAnd,
	"==": compare, "!=": compare, "<=": compare, ">=": compare, "<": compare, ">": compare,
	"+": sum, "-": sum,
	"*": product, "/": product, "%": product,
}

func precedenceOf(tok token.Token) int {
	if tok.Kind != token.Symbol {
		return lowest
	}
	if p, ok := precedences[tok.Lexeme]; ok {
		return p
	}
	return lowest
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
}

// parseAbort is panicked to unwind a parse on the first error; Parse
// recovers it and returns the wrapped CompilerError.
type parseAbort struct{ err *kerrors.CompilerError }

// Parser holds the token cursor and the source text needed to render
// positioned diagnostics.
type Parser struct {
	cursor *Cursor
	source string
	file   string
}

// New creates a Parser over tokens. source and file are used only to
// annotate diagnostics (source for the context line, file for the header);
// file may be empty for an unnamed program.
func New(tokens []token.Token, source, file string) *Parser {
	return &Parser{cursor: NewCursor(tokens), source: source, file: file}
}

// Parse runs the parser over the full token stream, producing a Program or
// the single CompilerError that aborted parsing (spec.md's "no recovery").
// The returned slice has at most one element; it is a slice (rather than a
// single *CompilerError) so callers share one error-reporting path with a
// hypothetical future recovering parser.
func (p *Parser) Parse() (prog *ast.Program, errs []*kerrors.CompilerError) {
	defer func() {
		if r := recover(); r != nil {
			abort, ok := r.(parseAbort)
			if !ok {
				panic(r)
			}
			prog, errs = nil, []*kerrors.CompilerError{abort.err}
		}
	}()
	return p.parseProgram(), nil
}

func (p *Parser) abort(pos token.Position, format string, args ...any) {
	panic(parseAbort{kerrors.NewCompilerError(pos, fmt.Sprintf(format, args...), p.source, p.file)})
}

func (p *Parser) current() token.Token { return p.cursor.Current() }
func (p *Parser) peek(n int) token.Token { return p.cursor.Peek(n) }
func (p *Parser) advance() token.Token { return p.cursor.Advance() }

func (p *Parser) isSymbol(s string) bool {
	c := p.current()
	return c.Kind == token.Symbol && c.Lexeme == s
}

func (p *Parser) isKeyword(k string) bool {
	c := p.current()
	return c.Kind == token.Keyword && c.Lexeme == k
}

func (p *Parser) expectSymbol(s string) token.Token {
	if !p.isSymbol(s) {
		p.abort(p.current().Pos, "expected %q, got %q", s, p.current().Lexeme)
	}
	return p.advance()
}

func (p *Parser) expectKeyword(k string) token.Token {
	if !p.isKeyword(k) {
		p.abort(p.current().Pos, "expected keyword %q, got %q", k, p.current().Lexeme)
	}
	return p.advance()
}

func (p *Parser) expectIdentifier() token.Token {
	if p.current().Kind != token.Identifier {
		p.abort(p.current().Pos, "expected an identifier, got %q", p.current().Lexeme)
	}
	return p.advance()
}

// parseProgram implements `program := ( declare | function_declare )*`.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.cursor.AtEnd() {
		switch {
		case p.isKeyword("var"):
			prog.Statements = append(prog.Statements, p.parseDeclare())
		case p.isKeyword("function"):
			prog.Statements = append(prog.Statements, p.parseFunctionDeclare())
		default:
			p.abort(p.current().Pos, "top-level statements must be 'var' or 'function', got %q", p.current().Lexeme)
		}
	}
	return prog
}

// parseFunctionDeclare implements
// `function_declare := "function" id "(" [ id ( "," id )* ] ")" block`.
func (p *Parser) parseFunctionDeclare() *ast.FunctionDeclare {
	kw := p.expectKeyword("function")
	name := p.expectIdentifier()

	p.expectSymbol("(")
	var params []string
	if !p.isSymbol(")") {
		params = append(params, p.expectIdentifier().Lexeme)
		for p.isSymbol(",") {
			p.advance()
			params = append(params, p.expectIdentifier().Lexeme)
		}
	}
	p.expectSymbol(")")

	body := p.parseBlock()
	return &ast.FunctionDeclare{Position: kw.Pos, Name: name.Lexeme, Params: params, Body: body}
}

// parseBlock implements `block := "{" statement+ "}"`.
func (p *Parser) parseBlock() *ast.Block {
	open := p.expectSymbol("{")
	block := &ast.Block{Position: open.Pos}
	for !p.isSymbol("}") {
		if p.cursor.AtEnd() {
			p.abort(p.current().Pos, "unterminated block, expected '}'")
		}
		block.Statements = append(block.Statements, p.parseStatement())
	}
	if len(block.Statements) == 0 {
		p.abort(open.Pos, "a block must contain at least one statement")
	}
	p.expectSymbol("}")
	return block
}

// parseStatement implements the `statement` production.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.isKeyword("var"):
		return p.parseDeclare()
	case p.isKeyword("if"):
		return p.parseIf()
	case p.isKeyword("while"):
		return p.parseWhile()
	case p.isKeyword("return"):
		return p.parseReturn()
	default:
		return p.parsePrimaryStatement()
	}
}

// parseDeclare implements `declare := "var" id "=" expr ";"`.
func (p *Parser) parseDeclare() *ast.Declare {
	kw := p.expectKeyword("var")
	name := p.expectIdentifier()
	p.expectSymbol("=")
	init := p.parseExpr(lowest)
	p.expectSymbol(";")
	return &ast.Declare{Position: kw.Pos, Name: name.Lexeme, Init: init}
}

// parseIf implements `"if" expr "then" block [ "else" block ]`.
func (p *Parser) parseIf() ast.Statement {
	kw := p.expectKeyword("if")
	cond := p.parseExpr(lowest)
	p.expectKeyword("then")
	then := p.parseBlock()
	if p.isKeyword("else") {
		p.advance()
		els := p.parseBlock()
		return &ast.IfElse{Position: kw.Pos, Cond: cond, Then: then, Else: els}
	}
	return &ast.IfThen{Position: kw.Pos, Cond: cond, Then: then}
}

// parseWhile implements `"while" expr "do" block`.
func (p *Parser) parseWhile() *ast.While {
	kw := p.expectKeyword("while")
	cond := p.parseExpr(lowest)
	p.expectKeyword("do")
	body := p.parseBlock()
	return &ast.While{Position: kw.Pos, Cond: cond, Body: body}
}

// parseReturn implements `"return" expr ";"`.
func (p *Parser) parseReturn() *ast.Return {
	kw := p.expectKeyword("return")
	value := p.parseExpr(lowest)
	p.expectSymbol(";")
	return &ast.Return{Position: kw.Pos, Value: value}
}

// parsePrimaryStatement implements the two remaining statement forms:
// `primary assignment_tail ";"` when primary is an l-value, and
// `primary ";"` when primary is a FunctionCall.
func (p *Parser) parsePrimaryStatement() ast.Statement {
	pos := p.current().Pos
	expr := p.parsePrimary()

	if assignOps[p.current().Lexeme] && p.current().Kind == token.Symbol {
		switch expr.(type) {
		case *ast.VariableLookup, *ast.Access:
		default:
			p.abort(pos, "assignment target must be a variable or an indexed access")
		}
		op := p.advance()
		value := p.parseExpr(lowest)
		p.expectSymbol(";")
		return &ast.AssignOp{Position: pos, Target: expr, Op: op.Lexeme, Value: value}
	}

	if _, ok := expr.(*ast.FunctionCall); !ok {
		p.abort(pos, "a bare expression statement must be a function call")
	}
	p.expectSymbol(";")
	// A FunctionCall is an Expression, not a Statement; wrap it so it can
	// sit in a Block's statement list, evaluated for its side effects.
	return &ast.ExpressionStatement{Position: pos, Expression: expr}
}

// parseExpr implements the Pratt climb over `expr := primary { binop expr }`.
// The recursive call for the right operand uses the current operator's own
// precedence as its floor, so same-precedence operators stop climbing
// there and are instead picked up by this loop — giving left associativity.
func (p *Parser) parseExpr(rbp int) ast.Expression {
	left := p.parsePrimary()
	for {
		lbp := precedenceOf(p.current())
		if lbp <= rbp || lbp == lowest {
			break
		}
		opTok := p.advance()
		right := p.parseExpr(lbp)
		left = &ast.BinaryOp{Position: opTok.Pos, Op: opTok.Lexeme, Left: left, Right: right}
	}
	return left
}

// parsePrimary implements the `primary` production, including the postfix
// chains for its id/paren/sigil alternatives.
func (p *Parser) parsePrimary() ast.Expression {
	cur := p.current()

	switch {
	case cur.Kind == token.Symbol && (cur.Lexeme == "[" || cur.Lexeme == "<["):
		return p.parseVectorLiteral()

	case cur.Kind == token.Symbol && (cur.Lexeme == "-" || cur.Lexeme == "!"):
		p.advance()
		operand := p.parsePrimary()
		return &ast.UnaryOp{Position: cur.Pos, Op: cur.Lexeme, Operand: operand}

	case cur.Kind == token.Symbol && cur.Lexeme == "(":
		p.advance()
		inner := p.parseExpr(lowest)
		p.expectSymbol(")")
		return p.parsePostfixChain(inner)

	case cur.Kind == token.Identifier:
		p.advance()
		node := ast.Expression(&ast.VariableLookup{Position: cur.Pos, Name: cur.Lexeme})
		return p.parsePostfixChain(node)

	case cur.Kind == token.Symbol && cur.Lexeme == "$":
		p.advance()
		name := p.expectIdentifier()
		node := ast.Expression(&ast.VariableLookup{Position: cur.Pos, Name: name.Lexeme, Global: true})
		return p.parsePostfixChain(node)

	case cur.Kind == token.IntLiteral:
		p.advance()
		return &ast.IntLiteral{Position: cur.Pos, Value: parseInt(cur.Lexeme)}

	case cur.Kind == token.RealLiteral:
		p.advance()
		return &ast.RealLiteral{Position: cur.Pos, Value: parseFloat(cur.Lexeme)}

	case cur.Kind == token.StringLiteral:
		p.advance()
		return &ast.StringLiteral{Position: cur.Pos, Value: cur.Lexeme}

	case cur.Kind == token.BoolLiteral:
		p.advance()
		return &ast.BoolLiteral{Position: cur.Pos, Value: cur.Lexeme == "true"}

	default:
		p.abort(cur.Pos, "unexpected token %q while parsing an expression", cur.Lexeme)
		return nil // unreachable: abort panics
	}
}

// parsePostfixChain implements `postfix := "(" [ expr_list ] ")" | "[" expr "]"`,
// applied repeatedly.
func (p *Parser) parsePostfixChain(node ast.Expression) ast.Expression {
	for {
		switch {
		case p.isSymbol("("):
			open := p.advance()
			var args []ast.Expression
			if !p.isSymbol(")") {
				args = append(args, p.parseExpr(lowest))
				for p.isSymbol(",") {
					p.advance()
					args = append(args, p.parseExpr(lowest))
				}
			}
			p.expectSymbol(")")
			node = &ast.FunctionCall{Position: open.Pos, Callee: node, Args: args}

		case p.isSymbol("["):
			open := p.advance()
			idx := p.parseExpr(lowest)
			p.expectSymbol("]")
			node = &ast.Access{Position: open.Pos, Left: node, Index: idx}

		default:
			return node
		}
	}
}

// parseVectorLiteral implements
// `vector_literal := ( "[" | "<[" ) [ expr_list ] ( "]" | "]>" )`, enforcing
// that the closing delimiter matches the opening one.
func (p *Parser) parseVectorLiteral() *ast.VectorLiteral {
	open := p.advance()
	closer := "]"
	if open.Lexeme == "<[" {
		closer = "]>"
	}

	lit := &ast.VectorLiteral{Position: open.Pos}
	if !p.isSymbol(closer) {
		lit.Elements = append(lit.Elements, p.parseExpr(lowest))
		for p.isSymbol(",") {
			p.advance()
			lit.Elements = append(lit.Elements, p.parseExpr(lowest))
		}
	}
	p.expectSymbol(closer)
	return lit
}
