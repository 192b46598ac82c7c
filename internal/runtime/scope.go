package runtime

import (
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/pkg/token"
)

// ScopeKind distinguishes the two kinds of scope in spec.md §3.2.
type ScopeKind int

const (
	// ScopeBlock scopes always continue outward during lookup.
	ScopeBlock ScopeKind = iota
	// ScopeFunction scopes additionally gate outward lookup on the
	// invoked function's capture-lock (spec.md §4.4).
	ScopeFunction
)

// Scope holds the bindings declared directly in it, plus (for a
// Function scope) a reference to the FunctionValue being invoked so
// lookups can consult its lock state and captures.
type Scope struct {
	kind ScopeKind
	fn   *FunctionValue // non-nil only for ScopeFunction

	vars  map[string]Value
	order []string // declaration order, for deterministic teardown

	pending []*FunctionValue // function values defined here, awaiting capture finalization
}

func newScope(kind ScopeKind, fn *FunctionValue) *Scope {
	return &Scope{kind: kind, fn: fn, vars: make(map[string]Value)}
}

// ScopeStack is the evaluator's ordered stack of live scopes (spec.md
// §4.3), backed by a CallStack for Function-scope frames.
type ScopeStack struct {
	scopes []*Scope
	calls  *CallStack
}

// NewScopeStack creates an empty stack driving calls.
func NewScopeStack(calls *CallStack) *ScopeStack {
	return &ScopeStack{calls: calls}
}

// Depth returns the number of live scopes.
func (s *ScopeStack) Depth() int { return len(s.scopes) }

func (s *ScopeStack) top() *Scope {
	return s.scopes[len(s.scopes)-1]
}

// ScopeIn pushes a fresh scope of kind. For ScopeFunction, fn is the
// invoked function and a call-stack frame is pushed alongside it,
// recording callSite and fn's display name.
func (s *ScopeStack) ScopeIn(kind ScopeKind, fn *FunctionValue, callSite token.Position) *errors.EvalError {
	s.scopes = append(s.scopes, newScope(kind, fn))
	if kind == ScopeFunction {
		name := fn.CalleeName
		if name == "" {
			name = "<anonymous>"
		}
		if err := s.calls.Push(name, &callSite); err != nil {
			s.scopes = s.scopes[:len(s.scopes)-1]
			return &errors.EvalError{Message: err.Error()}
		}
	}
	return nil
}

// ScopeOut finalizes captures for every function defined in the
// top scope, releases its local bindings, pops the call-stack frame if
// it was a Function scope, and pops the scope itself (spec.md §4.3).
func (s *ScopeStack) ScopeOut() {
	top := s.top()

	for _, fv := range top.pending {
		s.finalizeCaptures(fv)
	}

	for _, name := range top.order {
		Release(top.vars[name])
	}

	if top.kind == ScopeFunction {
		s.calls.Pop()
	}

	s.scopes = s.scopes[:len(s.scopes)-1]
}

// finalizeCaptures snapshots fv's free variables against the still-live
// scope stack and sets its capture-lock, per spec.md §4.5.
func (s *ScopeStack) finalizeCaptures(fv *FunctionValue) {
	for _, name := range fv.Node.CaptureNames {
		if v, ok := s.Lookup(name); ok {
			fv.Captures[name] = AddRef(DeepCopy(v))
		}
	}
	fv.Locked = true
}

// RegisterPendingFunction appends fv to the current scope's
// pending-capture list (spec.md §4.5 step 2).
func (s *ScopeStack) RegisterPendingFunction(fv *FunctionValue) {
	top := s.top()
	top.pending = append(top.pending, fv)
}

// Declare creates binding (current scope, name) -> value. It fails if
// name already exists in the current scope or in any enclosing Block
// scope up to (but not including) the nearest enclosing Function scope
// — a name in that Function scope may be shadowed (spec.md §4.3).
func (s *ScopeStack) Declare(name string, value Value) *errors.EvalError {
	top := s.top()
	if _, exists := top.vars[name]; exists {
		return &errors.EvalError{Message: errors.MsgDuplicateDeclaration(name)}
	}
	for i := len(s.scopes) - 2; i >= 0 && top.kind != ScopeFunction; i-- {
		sc := s.scopes[i]
		if sc.kind == ScopeFunction {
			break
		}
		if _, exists := sc.vars[name]; exists {
			return &errors.EvalError{Message: errors.MsgDuplicateDeclaration(name)}
		}
	}

	top.vars[name] = value
	top.order = append(top.order, name)
	return nil
}

// Lookup resolves name for reading, per spec.md §4.4.
func (s *ScopeStack) Lookup(name string) (Value, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		sc := s.scopes[i]
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
		if sc.kind == ScopeBlock {
			continue
		}
		// ScopeFunction
		if sc.fn == nil || !sc.fn.Locked {
			continue
		}
		v, ok := sc.fn.Captures[name]
		return v, ok
	}
	return nil, false
}

// Reassign resolves name for writing and replaces its binding in place,
// returning the value it previously held so the caller can Release it.
// A locked Function scope blocks all outward traversal unconditionally
// (spec.md §4.4's mutable-lookup rule): captures are read-only.
func (s *ScopeStack) Reassign(name string, newValue Value) (Value, *errors.EvalError) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		sc := s.scopes[i]
		if old, ok := sc.vars[name]; ok {
			sc.vars[name] = newValue
			return old, nil
		}
		if sc.kind == ScopeFunction {
			if sc.fn != nil && sc.fn.Locked {
				return nil, &errors.EvalError{Message: errors.MsgImmutableOrUndeclared(name)}
			}
			continue
		}
	}
	return nil, &errors.EvalError{Message: errors.MsgImmutableOrUndeclared(name)}
}
