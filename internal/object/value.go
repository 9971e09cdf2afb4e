// Package object defines Kvazz's tagged runtime value model: every value
// produced by evaluation implements Value, mirroring go-dws's interface-based
// Value hierarchy rather than a single closed tagged struct.
package object

import (
	"strconv"
	"strings"

	"github.com/kvazzlang/kvazz/internal/ast"
)

// Kind names a Value's runtime tag, used in type-error messages.
type Kind string

const (
	NothingKind  Kind = "Nothing"
	IntKind      Kind = "Int"
	RealKind     Kind = "Real"
	BoolKind     Kind = "Bool"
	StringKind   Kind = "String"
	VectorKind   Kind = "Vector"
	FunctionKind Kind = "Function"
	BuiltinKind  Kind = "Builtin"
	LValueTag    Kind = "LValue"
)

// Value is implemented by every runtime value kind in §3.3.
type Value interface {
	Kind() Kind
	// String is the internal/debug representation, used by %v and by
	// equality error messages.
	String() string
	// Display is the user-facing form the print builtin writes, per the
	// table in spec.md §4.3.7.
	Display() string
}

// Nothing represents the absence of a value: "statement completed, no
// expression result" as well as the uninitialized default.
type nothingValue struct{}

func (nothingValue) Kind() Kind      { return NothingKind }
func (nothingValue) String() string  { return "Nothing" }
func (nothingValue) Display() string { return "" }

// Nothing is the single shared Nothing value.
var Nothing Value = nothingValue{}

// Int is a 64-bit signed integer value.
type Int struct{ Value int64 }

func (i *Int) Kind() Kind      { return IntKind }
func (i *Int) String() string  { return strconv.FormatInt(i.Value, 10) }
func (i *Int) Display() string { return i.String() }

// Real is an IEEE-754 double value.
type Real struct{ Value float64 }

func (r *Real) Kind() Kind      { return RealKind }
func (r *Real) String() string  { return strconv.FormatFloat(r.Value, 'g', -1, 64) }
func (r *Real) Display() string { return r.String() }

// Bool is a boolean value.
type Bool struct{ Value bool }

func (b *Bool) Kind() Kind { return BoolKind }
func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Bool) Display() string { return b.String() }

// String is an immutable string value: indexing it produces a new
// one-character String rather than a mutable slot.
type String struct{ Value string }

func (s *String) Kind() Kind      { return StringKind }
func (s *String) String() string  { return s.Value }
func (s *String) Display() string { return s.Value }

// Vector is an ordered, growable, heterogeneous sequence of Values. The
// `<[ ]>` and `[ ]` literal forms both produce a Vector; there is no
// separate homogeneous vector kind.
type Vector struct{ Elements []Value }

func (v *Vector) Kind() Kind { return VectorKind }
func (v *Vector) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (v *Vector) Display() string { return v.String() }

// CopyValue gives Vectors (and anything nested inside them) the value
// semantics spec.md §3.6 requires: every binding point (declaration,
// assignment, parameter passing, vector construction) gets an independent
// copy rather than a shared pointer. Every other Kind is already immutable
// at the Go level, so it's returned unchanged.
func CopyValue(v Value) Value {
	vec, ok := v.(*Vector)
	if !ok {
		return v
	}
	elems := make([]Value, len(vec.Elements))
	for i, e := range vec.Elements {
		elems[i] = CopyValue(e)
	}
	return &Vector{Elements: elems}
}

// Function is a user-defined function value: name plus a non-owning
// reference to its declaration's parameter names and body in the AST.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
}

func (f *Function) Kind() Kind { return FunctionKind }
func (f *Function) String() string {
	return "Function<" + f.Name + "(" + strings.Join(f.Params, ", ") + ")>"
}
func (f *Function) Display() string { return f.String() }

// BuiltinID enumerates the fixed set of built-in functions (spec.md §4.3.7).
type BuiltinID int

const (
	BuiltinPrint BuiltinID = iota
	BuiltinLengthOf
	BuiltinHevec
)

var builtinNames = map[BuiltinID]string{
	BuiltinPrint:    "print",
	BuiltinLengthOf: "lengthof",
	BuiltinHevec:    "hevec",
}

// Builtin is a reference to one of the interpreter's three built-in
// functions.
type Builtin struct{ ID BuiltinID }

func (b *Builtin) Kind() Kind      { return BuiltinKind }
func (b *Builtin) String() string  { return "Builtin<" + builtinNames[b.ID] + ">" }
func (b *Builtin) Display() string { return b.String() }

// Name returns the builtin's spec name ("print", "lengthof", "hevec").
func (b *Builtin) Name() string { return builtinNames[b.ID] }
