// Package builtins implements the host-provided functions spec.md §6
// treats as external collaborators: puts, map, assert, plus a couple of
// uncontroversial extensions documented in SPEC_FULL.md §4.12.
//
// Each registered function is exposed to a running program as an
// ordinary Function value whose body is a single ExternalInvocation
// statement (internal/ast) carrying the registry id; invoking it runs
// like any other call (parameters declared in a Function scope) until
// the body statement dispatches to the handler here. Dispatch is by
// integer id rather than a string-keyed table so the evaluator never
// needs to import this package (see internal/evaluator.Dispatcher).
package builtins

import (
	"sync"

	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/evaluator"
	"github.com/glintlang/glint/internal/runtime"
)

// Category groups related builtins for introspection/documentation
// purposes; it has no effect on dispatch.
type Category string

const (
	CategoryCore          Category = "core"
	CategoryIntrospection Category = "introspection"
)

// Handler implements one builtin's behavior. It reads its declared
// parameters out of the current scope via ctx.Lookup and returns the
// call's result, or nil for a function that returns void.
type Handler func(ctx *evaluator.Context) (runtime.Value, *errors.EvalError)

// FunctionInfo is the registry's record for one builtin.
type FunctionInfo struct {
	ID          int
	Name        string
	Params      []string
	Category    Category
	Description string
	Handler     Handler
}

// Value synthesizes the unlocked, capture-less Function value a program
// binds this builtin's name to. Glint builtins close over nothing and are
// never registered for capture finalization, so the value stays unlocked:
// the Function scope of a builtin call does not hide the caller's
// bindings from a callback the builtin invokes (as `map` does).
func (info *FunctionInfo) Value() *runtime.FunctionValue {
	params := make([]*ast.Identifier, len(info.Params))
	for i, p := range info.Params {
		params[i] = &ast.Identifier{Value: p}
	}
	lit := &ast.FunctionLiteral{
		Parameters: params,
		Body: &ast.BlockStatement{
			Statements: []ast.Statement{
				&ast.ExternalInvocationStatement{ID: info.ID, Name: info.Name},
			},
		},
	}
	return runtime.NewFunctionValue(lit, info.Name)
}

// Registry holds every registered builtin, indexed both by id (for
// Dispatch, called from internal/evaluator) and by name (for Get).
type Registry struct {
	mu     sync.RWMutex
	byID   []*FunctionInfo
	byName map[string]*FunctionInfo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*FunctionInfo)}
}

// Register adds a builtin under the next available id and returns its
// FunctionInfo. Registration order determines id assignment, so it
// must be stable across a process's lifetime once programs have been
// parsed against it.
func (r *Registry) Register(name string, params []string, category Category, description string, handler Handler) *FunctionInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := &FunctionInfo{
		ID:          len(r.byID),
		Name:        name,
		Params:      params,
		Category:    category,
		Description: description,
		Handler:     handler,
	}
	r.byID = append(r.byID, info)
	r.byName[name] = info
	return info
}

// Get retrieves a builtin's FunctionInfo by name.
func (r *Registry) Get(name string) (*FunctionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.byName[name]
	return info, ok
}

// All returns every registered builtin, in registration (id) order.
func (r *Registry) All() []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*FunctionInfo, len(r.byID))
	copy(out, r.byID)
	return out
}

// Dispatch implements evaluator.Dispatcher: it looks up the handler for
// id and runs it against ctx.
func (r *Registry) Dispatch(id int, ctx *evaluator.Context) (runtime.Value, *errors.EvalError) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || id >= len(r.byID) {
		return nil, ctx.Sink().Fail("unknown builtin id %d", id)
	}
	return r.byID[id].Handler(ctx)
}
