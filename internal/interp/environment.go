package interp

import "github.com/kvazzlang/kvazz/internal/object"

// Environment is a mapping from identifier to entry plus an optional parent,
// grounded on go-dws's internal/interp/runtime.Environment (store + outer
// pointer), but using a plain map instead of go-dws's case-insensitive
// ident.Map: Kvazz, unlike Pascal-derived DWScript, is case-sensitive.
//
// Environments form a tree; a Block push creates a child of the enclosing
// scope, and a function call creates a child of the global environment
// rather than of the caller (spec.md §3.4, §4.3.5).
type Environment struct {
	store map[string]object.Value
	outer *Environment
}

// NewEnvironment creates a root environment with no parent. Used once, for
// the global scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]object.Value)}
}

// NewEnclosedEnvironment creates a child scope of outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Value), outer: outer}
}

// Get resolves name by searching this environment, then outward along the
// parent chain. The first match wins.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// HasLocal reports whether name is bound directly in this environment
// (not an outer one). Declare/FunctionDeclare use this to detect
// redeclaration within the same scope; shadowing an enclosing scope is
// permitted.
func (e *Environment) HasLocal(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Declare binds name to v in this environment. Callers must have already
// checked HasLocal to enforce the no-redeclaration-in-scope invariant.
func (e *Environment) Declare(name string, v object.Value) {
	e.store[name] = v
}

// SetExisting writes v into the environment in this chain where name is
// already bound, searching outward. It implements object.EnvWriter for
// EnvSlot l-values (spec.md §4.3.6 step 4). The caller is responsible for
// only constructing an EnvSlot for a name resolved via Get, so the slot is
// always found.
func (e *Environment) SetExisting(name string, v object.Value) {
	if _, ok := e.store[name]; ok {
		e.store[name] = v
		return
	}
	if e.outer != nil {
		e.outer.SetExisting(name, v)
	}
}

// Global walks to the outermost environment in the chain.
func (e *Environment) Global() *Environment {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env
}
