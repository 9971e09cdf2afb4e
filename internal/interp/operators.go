package interp

import (
	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/object"
	"github.com/kvazzlang/kvazz/internal/token"
)

// truthiness implements spec.md §4.3.4's coercion to Bool used by !, |, &,
// and the condition of if/while. Bool and Int/Real follow the obvious
// rule; String and Vector are always truthy regardless of content — a
// quirk inherited unchanged from the reference semantics (spec.md §9, Open
// Question 1) — and Nothing is always falsy.
func truthiness(v object.Value, pos token.Position) (bool, *kerrors.RuntimeError) {
	switch val := v.(type) {
	case *object.Bool:
		return val.Value, nil
	case *object.Int:
		return val.Value != 0, nil
	case *object.Real:
		return val.Value != 0, nil
	case *object.String:
		return true, nil
	case *object.Vector:
		return true, nil
	case object.Value:
		if v.Kind() == object.NothingKind {
			return false, nil
		}
	}
	return false, kerrors.NewRuntimeError(pos, "cannot coerce a value of kind %s to Bool", v.Kind())
}

func isNumeric(v object.Value) bool {
	switch v.(type) {
	case *object.Int, *object.Real:
		return true
	default:
		return false
	}
}

func asFloat(v object.Value) float64 {
	switch n := v.(type) {
	case *object.Int:
		return float64(n.Value)
	case *object.Real:
		return n.Value
	}
	return 0
}

// applyBinaryOp implements the operator table in spec.md §4.3.3: numeric
// arithmetic with Int/Real promotion, String and Vector concatenation via
// +, Int-only %, ordering comparisons, universal == / !=, and | / & as
// truthiness-based logical operators over already-evaluated operands.
func applyBinaryOp(op string, left, right object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	switch op {
	case "+":
		return applyPlus(left, right, pos)
	case "-", "*", "/":
		return applyArith(op, left, right, pos)
	case "%":
		return applyModulo(left, right, pos)
	case "==":
		return &object.Bool{Value: valuesEqual(left, right)}, nil
	case "!=":
		return &object.Bool{Value: !valuesEqual(left, right)}, nil
	case "<", ">", "<=", ">=":
		return applyComparison(op, left, right, pos)
	case "|", "&":
		return applyLogical(op, left, right, pos)
	default:
		return nil, kerrors.NewRuntimeError(pos, "unknown binary operator %q", op)
	}
}

func applyPlus(left, right object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	if ls, ok := left.(*object.String); ok {
		rs, ok := right.(*object.String)
		if !ok {
			return nil, kerrors.NewRuntimeError(pos, "+ between String and %s is not defined", right.Kind())
		}
		return &object.String{Value: ls.Value + rs.Value}, nil
	}
	if lv, ok := left.(*object.Vector); ok {
		rv, ok := right.(*object.Vector)
		if !ok {
			return nil, kerrors.NewRuntimeError(pos, "+ between Vector and %s is not defined", right.Kind())
		}
		elems := make([]object.Value, 0, len(lv.Elements)+len(rv.Elements))
		elems = append(elems, lv.Elements...)
		elems = append(elems, rv.Elements...)
		return &object.Vector{Elements: elems}, nil
	}
	return applyArith("+", left, right, pos)
}

func applyArith(op string, left, right object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	if !isNumeric(left) || !isNumeric(right) {
		return nil, kerrors.NewRuntimeError(pos, "%s requires Int or Real operands, got %s and %s", op, left.Kind(), right.Kind())
	}

	li, lIsInt := left.(*object.Int)
	ri, rIsInt := right.(*object.Int)
	if lIsInt && rIsInt {
		switch op {
		case "+":
			return &object.Int{Value: li.Value + ri.Value}, nil
		case "-":
			return &object.Int{Value: li.Value - ri.Value}, nil
		case "*":
			return &object.Int{Value: li.Value * ri.Value}, nil
		case "/":
			if ri.Value == 0 {
				return nil, kerrors.NewRuntimeError(pos, "division by zero")
			}
			return &object.Int{Value: li.Value / ri.Value}, nil
		}
	}

	lf, rf := asFloat(left), asFloat(right)
	switch op {
	case "+":
		return &object.Real{Value: lf + rf}, nil
	case "-":
		return &object.Real{Value: lf - rf}, nil
	case "*":
		return &object.Real{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, kerrors.NewRuntimeError(pos, "division by zero")
		}
		return &object.Real{Value: lf / rf}, nil
	}
	return nil, kerrors.NewRuntimeError(pos, "unknown arithmetic operator %q", op)
}

func applyModulo(left, right object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	li, ok := left.(*object.Int)
	if !ok {
		return nil, kerrors.NewRuntimeError(pos, "%% requires Int operands, got %s", left.Kind())
	}
	ri, ok := right.(*object.Int)
	if !ok {
		return nil, kerrors.NewRuntimeError(pos, "%% requires Int operands, got %s", right.Kind())
	}
	if ri.Value == 0 {
		return nil, kerrors.NewRuntimeError(pos, "modulo by zero")
	}
	return &object.Int{Value: li.Value % ri.Value}, nil
}

func applyComparison(op string, left, right object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	if !isNumeric(left) || !isNumeric(right) {
		return nil, kerrors.NewRuntimeError(pos, "%s requires Int or Real operands, got %s and %s", op, left.Kind(), right.Kind())
	}
	lf, rf := asFloat(left), asFloat(right)
	var result bool
	switch op {
	case "<":
		result = lf < rf
	case ">":
		result = lf > rf
	case "<=":
		result = lf <= rf
	case ">=":
		result = lf >= rf
	}
	return &object.Bool{Value: result}, nil
}

func applyLogical(op string, left, right object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	lt, err := truthiness(left, pos)
	if err != nil {
		return nil, err
	}
	rt, err := truthiness(right, pos)
	if err != nil {
		return nil, err
	}
	if op == "|" {
		return &object.Bool{Value: lt || rt}, nil
	}
	return &object.Bool{Value: lt && rt}, nil
}

// valuesEqual implements ==: equality is only ever true within a single
// kind, except Int and Real compare by numeric value across kinds
// (spec.md §4.3.3). Function and Builtin values are never equal, not even
// to themselves, and Nothing always equals Nothing.
func valuesEqual(left, right object.Value) bool {
	if left.Kind() != right.Kind() {
		if isNumeric(left) && isNumeric(right) {
			return asFloat(left) == asFloat(right)
		}
		return false
	}
	switch l := left.(type) {
	case *object.Int:
		return l.Value == right.(*object.Int).Value
	case *object.Real:
		return l.Value == right.(*object.Real).Value
	case *object.Bool:
		return l.Value == right.(*object.Bool).Value
	case *object.String:
		return l.Value == right.(*object.String).Value
	case *object.Vector:
		r := right.(*object.Vector)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i, e := range l.Elements {
			if !valuesEqual(e, r.Elements[i]) {
				return false
			}
		}
		return true
	case *object.Function:
		// Function and Builtin values are always considered unequal, even
		// to themselves (spec.md §4.3.3).
		return false
	case *object.Builtin:
		return false
	default:
		// Nothing == Nothing.
		return true
	}
}
