package interp

import (
	"github.com/kvazzlang/kvazz/internal/ast"
	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/object"
	"github.com/kvazzlang/kvazz/internal/token"
)

// evalExprNode dispatches the expression-only node kinds. It never produces
// the Return signal.
func (i *Interpreter) evalExprNode(node ast.Expression, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return &object.Int{Value: n.Value}, Good, nil
	case *ast.RealLiteral:
		return &object.Real{Value: n.Value}, Good, nil
	case *ast.BoolLiteral:
		return &object.Bool{Value: n.Value}, Good, nil
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}, Good, nil
	case *ast.VectorLiteral:
		return i.evalVectorLiteral(n, env)
	case *ast.VariableLookup:
		return i.evalVariableLookup(n, env)
	case *ast.UnaryOp:
		return i.evalUnaryOp(n, env)
	case *ast.BinaryOp:
		return i.evalBinaryOp(n, env)
	case *ast.FunctionCall:
		return i.evalFunctionCall(n, env)
	case *ast.Access:
		return i.evalAccess(n, env)
	default:
		return nil, Error, kerrors.NewRuntimeError(node.Pos(), "cannot evaluate expression %T", node)
	}
}

func (i *Interpreter) evalVectorLiteral(n *ast.VectorLiteral, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	elems := make([]object.Value, len(n.Elements))
	for idx, elemExpr := range n.Elements {
		v, err := i.evalExpr(elemExpr, env)
		if err != nil {
			return nil, Error, err
		}
		elems[idx] = object.CopyValue(v)
	}
	return &object.Vector{Elements: elems}, Good, nil
}

// evalVariableLookup resolves an identifier. Built-ins are checked before
// the environment chain, so user code can never shadow print/lengthof/hevec
// by declaring a local of the same name (spec.md §3.4).
func (i *Interpreter) evalVariableLookup(n *ast.VariableLookup, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	if b, ok := i.builtins[n.Name]; ok {
		return b, Good, nil
	}

	base := env
	if n.Global {
		base = env.Global()
	}
	if v, ok := base.Get(n.Name); ok {
		return v, Good, nil
	}
	return nil, Error, kerrors.NewRuntimeError(n.Position, "undefined identifier %q", n.Name)
}

func (i *Interpreter) evalUnaryOp(n *ast.UnaryOp, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	operand, err := i.evalExpr(n.Operand, env)
	if err != nil {
		return nil, Error, err
	}

	switch n.Op {
	case "!":
		truthy, err := truthiness(operand, n.Position)
		if err != nil {
			return nil, Error, err
		}
		return &object.Bool{Value: !truthy}, Good, nil
	case "-":
		switch v := operand.(type) {
		case *object.Int:
			return &object.Int{Value: -v.Value}, Good, nil
		case *object.Real:
			return &object.Real{Value: -v.Value}, Good, nil
		default:
			return nil, Error, kerrors.NewRuntimeError(n.Position, "unary - requires Int or Real, got %s", operand.Kind())
		}
	default:
		return nil, Error, kerrors.NewRuntimeError(n.Position, "unknown unary operator %q", n.Op)
	}
}

// evalBinaryOp evaluates both operands unconditionally — Kvazz has no
// short-circuit boolean operators, even for | and & (spec.md §4.3.3).
func (i *Interpreter) evalBinaryOp(n *ast.BinaryOp, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	left, err := i.evalExpr(n.Left, env)
	if err != nil {
		return nil, Error, err
	}
	right, err := i.evalExpr(n.Right, env)
	if err != nil {
		return nil, Error, err
	}

	v, err := applyBinaryOp(n.Op, left, right, n.Position)
	if err != nil {
		return nil, Error, err
	}
	return v, Good, nil
}

func (i *Interpreter) evalFunctionCall(n *ast.FunctionCall, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	callee, err := i.evalExpr(n.Callee, env)
	if err != nil {
		return nil, Error, err
	}

	args := make([]object.Value, len(n.Args))
	for idx, argExpr := range n.Args {
		v, err := i.evalExpr(argExpr, env)
		if err != nil {
			return nil, Error, err
		}
		args[idx] = v
	}

	switch fn := callee.(type) {
	case *object.Function:
		v, err := i.invoke(fn, args)
		if err != nil {
			return nil, Error, err
		}
		return v, Good, nil
	case *object.Builtin:
		v, err := i.callBuiltin(fn, args, n.Position)
		if err != nil {
			return nil, Error, err
		}
		return v, Good, nil
	default:
		return nil, Error, kerrors.NewRuntimeError(n.Position, "cannot call a value of kind %s", callee.Kind())
	}
}

// invoke runs fn's body in a fresh environment parented on the global
// environment — never the caller's scope (spec.md §4.3.5) — binding
// parameters positionally and stripping the Return signal back to a plain
// Value. A body that completes without hitting Return yields Nothing.
func (i *Interpreter) invoke(fn *object.Function, args []object.Value) (object.Value, *kerrors.RuntimeError) {
	if len(args) != len(fn.Params) {
		return nil, kerrors.NewRuntimeError(fn.Body.Position, "function %q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	callEnv := NewEnclosedEnvironment(i.global)
	for idx, param := range fn.Params {
		callEnv.Declare(param, object.CopyValue(args[idx]))
	}

	v, sig, err := i.evalStatements(toStatements(fn.Body.Statements), callEnv)
	if sig == Error {
		return nil, err
	}
	if sig == Return {
		return v, nil
	}
	return object.Nothing, nil
}

func (i *Interpreter) evalAccess(n *ast.Access, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	left, err := i.evalExpr(n.Left, env)
	if err != nil {
		return nil, Error, err
	}
	index, err := i.evalExpr(n.Index, env)
	if err != nil {
		return nil, Error, err
	}

	v, err := indexValue(left, index, n.Position)
	if err != nil {
		return nil, Error, err
	}
	return v, Good, nil
}

// indexValue implements read-access for both Vector and String subjects;
// the index must be an Int. Out-of-range indices are runtime errors, not a
// Nothing result (spec.md §4.3.2, Access).
func indexValue(subject, index object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	idxInt, ok := index.(*object.Int)
	if !ok {
		return nil, kerrors.NewRuntimeError(pos, "index must be an Int, got %s", index.Kind())
	}
	idx := int(idxInt.Value)

	switch s := subject.(type) {
	case *object.Vector:
		if idx < 0 || idx >= len(s.Elements) {
			return nil, kerrors.NewRuntimeError(pos, "vector index %d out of range [0, %d)", idx, len(s.Elements))
		}
		return s.Elements[idx], nil
	case *object.String:
		if idx < 0 || idx >= len(s.Value) {
			return nil, kerrors.NewRuntimeError(pos, "string index %d out of range [0, %d)", idx, len(s.Value))
		}
		return &object.String{Value: string(s.Value[idx])}, nil
	default:
		return nil, kerrors.NewRuntimeError(pos, "cannot index a value of kind %s", subject.Kind())
	}
}
