// Package evaluator is the core recursive-descent evaluator (spec.md
// §4.5-§4.7): it walks an internal/ast tree against an
// internal/runtime.ScopeStack, producing runtime.Values and
// ReturnActions, and reports failures through an internal/errors.Sink.
package evaluator

import (
	"io"

	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/runtime"
	"github.com/glintlang/glint/pkg/token"
)

// Dispatcher routes an ExternalInvocation statement to a host-implemented
// builtin handler by registry id (spec.md §4.6, §6). It is an interface
// here, not a direct dependency on internal/builtins, because builtins
// needs this package's Context type — importing builtins from here
// would close the cycle.
type Dispatcher interface {
	Dispatch(id int, ctx *Context) (runtime.Value, *errors.EvalError)
}

// Evaluator executes statements and evaluates expressions against a
// scope stack, per spec.md §4.5-§4.7.
type Evaluator struct {
	scopes     *runtime.ScopeStack
	calls      *runtime.CallStack
	sink       *errors.Sink
	dispatcher Dispatcher
	stdout     io.Writer
}

// New constructs an Evaluator. sink receives fail/warn reports;
// dispatcher resolves ExternalInvocation statements (nil is fine for a
// program that declares no builtins, e.g. in unit tests); stdout is
// where `puts` writes.
func New(sink *errors.Sink, dispatcher Dispatcher, stdout io.Writer) *Evaluator {
	calls := runtime.NewCallStack(runtime.DefaultMaxDepth)
	e := &Evaluator{
		scopes:     runtime.NewScopeStack(calls),
		calls:      calls,
		sink:       sink,
		dispatcher: dispatcher,
		stdout:     stdout,
	}
	sink.SetCallStack(calls)
	return e
}

// Scopes exposes the scope stack so a runner can install the
// host-provided builtins scope (spec.md §4.3: "the bottom of the stack
// is reserved for host-installed builtins") before calling Run.
func (e *Evaluator) Scopes() *runtime.ScopeStack { return e.scopes }

// Run evaluates every top-level statement of program inside one Block
// scope. On return the scope stack is back to whatever it was before
// Run was called (spec.md §8's quiescence invariant), regardless of
// whether evaluation succeeded.
func (e *Evaluator) Run(program *ast.Program) *errors.EvalError {
	if err := e.scopes.ScopeIn(runtime.ScopeBlock, nil, token.Position{}); err != nil {
		return err
	}
	var action ReturnAction
	var err *errors.EvalError
	for _, stmt := range program.Statements {
		action, err = e.execStatement(stmt)
		if err != nil || action.Kind != DidntReturn {
			break
		}
	}
	e.scopes.ScopeOut()
	return err
}

// invoke performs spec.md §4.5's Invocation procedure: arity check,
// scope_in(Function), parameter binding, body execution, scope_out.
func (e *Evaluator) invoke(fn *runtime.FunctionValue, args []runtime.Value, callSite token.Position) (ReturnAction, *errors.EvalError) {
	if len(args) != len(fn.Node.Parameters) {
		return Fallthrough, e.sink.FailAt(callSite, errors.MsgArityMismatch(len(fn.Node.Parameters), len(args)))
	}

	if err := e.scopes.ScopeIn(runtime.ScopeFunction, fn, callSite); err != nil {
		return Fallthrough, e.sink.FailAt(callSite, "%s", err.Message)
	}

	for i, p := range fn.Node.Parameters {
		argVal := runtime.AddRef(runtime.DeepCopy(args[i]))
		if declErr := e.scopes.Declare(p.Value, argVal); declErr != nil {
			failErr := e.sink.FailAt(p.Pos(), "%s", declErr.Message)
			e.scopes.ScopeOut()
			return Fallthrough, failErr
		}
	}

	action, err := e.execBlock(fn.Node.Body)
	e.scopes.ScopeOut()
	return action, err
}
