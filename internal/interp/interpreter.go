// Package interp is the tree-walking evaluator: it dispatches on AST node
// kind and drives operator semantics, control flow, function invocation,
// and the three built-in functions, against a lexically-scoped environment
// chain (spec.md §4.3). Grounded on go-dws's internal/interp evaluator
// shape (one eval method family dispatching on ast node type, a Signal-like
// flag threaded alongside every Value) and its internal/interp/options.go
// functional-options pattern.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/kvazzlang/kvazz/internal/ast"
	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/object"
)

// Signal tags the outcome of evaluating a statement or expression.
type Signal int

const (
	// Good means "completed normally"; the accompanying Value is the
	// result (object.Nothing for statements with no expression result).
	Good Signal = iota
	// Return means a Return statement produced this Value; it
	// short-circuits the enclosing Block/While/IfThen/IfElse and is
	// stripped back to Good by the nearest function invocation.
	Return
	// Error means evaluation of the current expression failed; the
	// accompanying *kerrors.RuntimeError describes why.
	Error
)

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithStdout redirects the print builtin's output, for tests and embedders
// that want to capture it instead of the process's real stdout.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.stdout = w }
}

// WithTrace enables printing one line per evaluated statement to stderr,
// for the exec CLI verb's --trace flag.
func WithTrace(trace bool) Option {
	return func(i *Interpreter) { i.trace = trace }
}

// Interpreter holds the global environment and built-in function table for
// one program run. It is re-entrant on the AST: function bodies are shared
// sub-trees, and the interpreter never mutates an AST node.
type Interpreter struct {
	global   *Environment
	builtins map[string]*object.Builtin
	stdout   io.Writer
	trace    bool
}

// New creates an Interpreter with a fresh global environment and the three
// built-in functions registered (spec.md §4.3.7).
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global: NewEnvironment(),
		stdout: os.Stdout,
	}
	i.builtins = map[string]*object.Builtin{
		"print":    {ID: object.BuiltinPrint},
		"lengthof": {ID: object.BuiltinLengthOf},
		"hevec":    {ID: object.BuiltinHevec},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run evaluates program: its top-level Declare/FunctionDeclare statements
// populate the global environment, then, if the global environment binds
// "main" to a Function, it is invoked with no arguments (spec.md §4.3.2).
func (i *Interpreter) Run(program *ast.Program) *kerrors.RuntimeError {
	for _, stmt := range program.Statements {
		_, sig, err := i.eval(stmt, i.global)
		if sig == Error {
			return err
		}
	}

	mainFn, ok := i.global.Get("main")
	if !ok {
		return nil
	}
	fn, ok := mainFn.(*object.Function)
	if !ok {
		return nil
	}
	_, err := i.invoke(fn, nil)
	return err
}

// eval dispatches on node kind, returning the produced Value, the control
// signal, and — when the signal is Error — the runtime error describing
// the failure.
func (i *Interpreter) eval(node ast.Node, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	if _, isStmt := node.(ast.Statement); i.trace && isStmt {
		fmt.Fprintf(os.Stderr, "trace: %s\n", node.String())
	}

	switch n := node.(type) {
	case *ast.Program:
		return i.evalStatements(toStatements(n.Statements), env)
	case *ast.Block:
		return i.evalBlock(n, env)
	case *ast.Declare:
		return i.evalDeclare(n, env)
	case *ast.FunctionDeclare:
		return i.evalFunctionDeclare(n, env)
	case *ast.AssignOp:
		return i.evalAssignOp(n, env)
	case *ast.ExpressionStatement:
		v, err := i.evalExpr(n.Expression, env)
		if err != nil {
			return nil, Error, err
		}
		return v, Good, nil
	case *ast.Return:
		return i.evalReturn(n, env)
	case *ast.IfThen:
		return i.evalIfThen(n, env)
	case *ast.IfElse:
		return i.evalIfElse(n, env)
	case *ast.While:
		return i.evalWhile(n, env)
	case ast.Expression:
		return i.evalExprNode(n, env)
	default:
		return nil, Error, kerrors.NewRuntimeError(node.Pos(), "cannot evaluate node %T", node)
	}
}

// evalExpr is the common entry point for expression-only evaluation: it
// never returns the Return signal.
func (i *Interpreter) evalExpr(expr ast.Expression, env *Environment) (object.Value, *kerrors.RuntimeError) {
	v, sig, err := i.eval(expr, env)
	if sig == Error {
		return nil, err
	}
	return v, nil
}

func toStatements(stmts []ast.Statement) []ast.Node {
	out := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

func (i *Interpreter) evalStatements(stmts []ast.Node, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	for _, stmt := range stmts {
		v, sig, err := i.eval(stmt, env)
		if sig != Good {
			return v, sig, err
		}
	}
	return object.Nothing, Good, nil
}

func (i *Interpreter) evalBlock(b *ast.Block, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	child := NewEnclosedEnvironment(env)
	return i.evalStatements(toStatements(b.Statements), child)
}

func (i *Interpreter) evalDeclare(d *ast.Declare, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	v, err := i.evalExpr(d.Init, env)
	if err != nil {
		return nil, Error, err
	}
	if env.HasLocal(d.Name) {
		return nil, Error, kerrors.NewRuntimeError(d.Position, "%q is already declared in this scope", d.Name)
	}
	env.Declare(d.Name, object.CopyValue(v))
	return object.Nothing, Good, nil
}

func (i *Interpreter) evalFunctionDeclare(f *ast.FunctionDeclare, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	if env.HasLocal(f.Name) {
		return nil, Error, kerrors.NewRuntimeError(f.Position, "%q is already declared in this scope", f.Name)
	}
	env.Declare(f.Name, &object.Function{Name: f.Name, Params: f.Params, Body: f.Body})
	return object.Nothing, Good, nil
}

func (i *Interpreter) evalReturn(r *ast.Return, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	v, err := i.evalExpr(r.Value, env)
	if err != nil {
		return nil, Error, err
	}
	return v, Return, nil
}

func (i *Interpreter) evalIfThen(n *ast.IfThen, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	cond, err := i.evalExpr(n.Cond, env)
	if err != nil {
		return nil, Error, err
	}
	truthy, err := truthiness(cond, n.Position)
	if err != nil {
		return nil, Error, err
	}
	if truthy {
		return i.evalBlock(n.Then, env)
	}
	return object.Nothing, Good, nil
}

func (i *Interpreter) evalIfElse(n *ast.IfElse, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	cond, err := i.evalExpr(n.Cond, env)
	if err != nil {
		return nil, Error, err
	}
	truthy, err := truthiness(cond, n.Position)
	if err != nil {
		return nil, Error, err
	}
	if truthy {
		return i.evalBlock(n.Then, env)
	}
	return i.evalBlock(n.Else, env)
}

func (i *Interpreter) evalWhile(n *ast.While, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	for {
		cond, err := i.evalExpr(n.Cond, env)
		if err != nil {
			return nil, Error, err
		}
		truthy, err := truthiness(cond, n.Position)
		if err != nil {
			return nil, Error, err
		}
		if !truthy {
			return object.Nothing, Good, nil
		}
		v, sig, err := i.evalBlock(n.Body, env)
		if sig == Return || sig == Error {
			return v, sig, err
		}
	}
}

