package evaluator

import (
	"io"

	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/runtime"
	"github.com/glintlang/glint/pkg/token"
)

// Context is the capability surface handed to a builtin handler: the
// current scope for reading its declared parameters, the error sink,
// the program's output writer, and the ability to invoke a Function
// value (used by `map`). It deliberately doesn't expose the Evaluator
// itself, so a handler can't reach into scope-stack internals the
// runtime package doesn't already make public.
type Context struct {
	eval *Evaluator
}

// Lookup reads a binding visible from the call site currently
// executing the builtin — ordinarily its own declared parameters.
func (c *Context) Lookup(name string) (runtime.Value, bool) {
	return c.eval.scopes.Lookup(name)
}

// Sink lets a handler report a typed failure through the same
// error-message catalog the rest of the evaluator uses.
func (c *Context) Sink() *errors.Sink {
	return c.eval.sink
}

// Stdout is where `puts` and friends write their output.
func (c *Context) Stdout() io.Writer {
	return c.eval.stdout
}

// Invoke calls a Function value with args, for builtins like `map`
// that apply a callback. pos is used for arity-mismatch and stack
// frame reporting.
func (c *Context) Invoke(fn *runtime.FunctionValue, args []runtime.Value, pos token.Position) (runtime.Value, *errors.EvalError) {
	action, err := c.eval.invoke(fn, args, pos)
	if err != nil {
		return nil, err
	}
	if action.Kind == ReturnedValue {
		return action.Value, nil
	}
	return runtime.Void, nil
}
