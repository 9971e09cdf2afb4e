package interp

import (
	"fmt"

	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/object"
	"github.com/kvazzlang/kvazz/internal/token"
)

// callBuiltin implements the three fixed built-in functions (spec.md
// §4.3.7). Argument counts and kinds are checked here rather than at parse
// time, since builtins are ordinary callable values resolved at runtime.
func (i *Interpreter) callBuiltin(b *object.Builtin, args []object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	switch b.ID {
	case object.BuiltinPrint:
		return i.builtinPrint(args, pos)
	case object.BuiltinLengthOf:
		return i.builtinLengthOf(args, pos)
	case object.BuiltinHevec:
		return i.builtinHevec(args, pos)
	default:
		return nil, kerrors.NewRuntimeError(pos, "unknown builtin %q", b.Name())
	}
}

// print writes the Display form of each argument, space-separated, followed
// by a newline, and yields Nothing.
func (i *Interpreter) builtinPrint(args []object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	for idx, a := range args {
		if idx > 0 {
			fmt.Fprint(i.stdout, " ")
		}
		fmt.Fprint(i.stdout, a.Display())
	}
	fmt.Fprintln(i.stdout)
	return object.Nothing, nil
}

// lengthof returns the element count of a Vector argument, or the byte
// length of a String argument, as an Int.
func (i *Interpreter) builtinLengthOf(args []object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	if len(args) != 1 {
		return nil, kerrors.NewRuntimeError(pos, "lengthof expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *object.Vector:
		return &object.Int{Value: int64(len(v.Elements))}, nil
	case *object.String:
		return &object.Int{Value: int64(len(v.Value))}, nil
	default:
		return nil, kerrors.NewRuntimeError(pos, "lengthof requires a Vector or String, got %s", v.Kind())
	}
}

// hevec ("heterogeneous vector") builds a Vector of n copies of a fill value:
// hevec(n [, default]). The fill value defaults to Nothing when omitted.
func (i *Interpreter) builtinHevec(args []object.Value, pos token.Position) (object.Value, *kerrors.RuntimeError) {
	if len(args) != 1 && len(args) != 2 {
		return nil, kerrors.NewRuntimeError(pos, "hevec expects 1 or 2 arguments, got %d", len(args))
	}
	n, ok := args[0].(*object.Int)
	if !ok {
		return nil, kerrors.NewRuntimeError(pos, "hevec's first argument must be an Int, got %s", args[0].Kind())
	}
	if n.Value < 0 {
		return nil, kerrors.NewRuntimeError(pos, "hevec's first argument must be non-negative, got %d", n.Value)
	}

	fill := object.Nothing
	if len(args) == 2 {
		fill = args[1]
	}

	elems := make([]object.Value, n.Value)
	for idx := range elems {
		elems[idx] = object.CopyValue(fill)
	}
	return &object.Vector{Elements: elems}, nil
}
