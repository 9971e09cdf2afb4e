package interp

import (
	"strings"

	"github.com/kvazzlang/kvazz/internal/ast"
	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/object"
)

// evalPlace resolves the target of an AssignOp to an object.LValue without
// going through the Value-producing evalExpr path. The parser only ever
// admits a VariableLookup or Access as a Target, so those are the only two
// cases here.
//
// Left/Index sub-expressions of an Access target are evaluated with plain
// evalExpr, not evalPlace, so indexing into the result of an l-value never
// leaks l-value-ness into a nested expression (e.g. v[i][j] only ever
// assigns through the outermost Access).
func (i *Interpreter) evalPlace(expr ast.Expression, env *Environment) (*object.LValue, *kerrors.RuntimeError) {
	switch n := expr.(type) {
	case *ast.VariableLookup:
		base := env
		if n.Global {
			base = env.Global()
		}
		if _, ok := base.Get(n.Name); !ok {
			return nil, kerrors.NewRuntimeError(n.Position, "cannot assign to undeclared identifier %q", n.Name)
		}
		return &object.LValue{Kind: object.EnvSlot, Env: base, Name: n.Name}, nil

	case *ast.Access:
		left, err := i.evalExpr(n.Left, env)
		if err != nil {
			return nil, err
		}
		index, err := i.evalExpr(n.Index, env)
		if err != nil {
			return nil, err
		}
		vec, ok := left.(*object.Vector)
		if !ok {
			return nil, kerrors.NewRuntimeError(n.Position, "cannot assign into a value of kind %s", left.Kind())
		}
		idxInt, ok := index.(*object.Int)
		if !ok {
			return nil, kerrors.NewRuntimeError(n.Position, "index must be an Int, got %s", index.Kind())
		}
		idx := int(idxInt.Value)
		if idx < 0 || idx >= len(vec.Elements) {
			return nil, kerrors.NewRuntimeError(n.Position, "vector index %d out of range [0, %d)", idx, len(vec.Elements))
		}
		return &object.LValue{Kind: object.VectorSlot, Vector: vec, Index: idx}, nil

	default:
		return nil, kerrors.NewRuntimeError(expr.Pos(), "%T is not a valid assignment target", expr)
	}
}

// writePlace stores v at the l-value's slot.
func writePlace(place *object.LValue, v object.Value) {
	switch place.Kind {
	case object.EnvSlot:
		place.Env.SetExisting(place.Name, v)
	case object.VectorSlot:
		place.Vector.Elements[place.Index] = v
	}
}

// evalAssignOp implements spec.md §4.3.6: resolve the target to an
// l-value, evaluate the right-hand side, and — for a compound operator —
// re-evaluate the target expression as an ordinary rvalue and combine it
// with the right-hand side via the corresponding binary operator before
// writing back.
func (i *Interpreter) evalAssignOp(n *ast.AssignOp, env *Environment) (object.Value, Signal, *kerrors.RuntimeError) {
	place, err := i.evalPlace(n.Target, env)
	if err != nil {
		return nil, Error, err
	}

	rhs, err := i.evalExpr(n.Value, env)
	if err != nil {
		return nil, Error, err
	}

	newVal := rhs
	if n.Op != "=" {
		// Re-evaluate the target expression itself, not just a cached read of
		// the resolved slot: a side-effecting index expression in an Access
		// target (e.g. v[bump()] += 1) must fire its side effect a second
		// time here, matching the original's double node->lvalue->eval call.
		baseOp := strings.TrimSuffix(n.Op, "=")
		current, err := i.evalExpr(n.Target, env)
		if err != nil {
			return nil, Error, err
		}
		newVal, err = applyBinaryOp(baseOp, current, rhs, n.Position)
		if err != nil {
			return nil, Error, err
		}
	}

	writePlace(place, object.CopyValue(newVal))
	return object.Nothing, Good, nil
}
