package builtins

import (
	"fmt"

	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/evaluator"
	"github.com/glintlang/glint/internal/runtime"
	"github.com/glintlang/glint/pkg/token"
)

// RegisterAll populates r with every core builtin. Registration order
// fixes id assignment for the lifetime of r.
func RegisterAll(r *Registry) {
	r.Register("puts", []string{"value"}, CategoryCore,
		"Renders value and writes a line to standard output", putsHandler)
	r.Register("map", []string{"target", "func"}, CategoryCore,
		"Calls func once per array element or dict entry", mapHandler)
	r.Register("assert", []string{"condition"}, CategoryCore,
		"Fails with \"Assert failed\" if condition is false", assertHandler)
	r.Register("len", []string{"value"}, CategoryIntrospection,
		"Returns the length of a string, array, or dict", lenHandler)
	r.Register("type", []string{"value"}, CategoryIntrospection,
		"Returns the runtime type name of value", typeHandler)
}

func putsHandler(ctx *evaluator.Context) (runtime.Value, *errors.EvalError) {
	v, _ := ctx.Lookup("value")
	fmt.Fprintln(ctx.Stdout(), runtime.RenderTopLevel(v))
	return nil, nil
}

// mapHandler implements spec.md §6's map(target, func): one call to
// func per array element, or two-argument (key, value) calls per dict
// entry. Its own return value is always void — the callback runs for
// its side effects, not to build a result.
func mapHandler(ctx *evaluator.Context) (runtime.Value, *errors.EvalError) {
	target, _ := ctx.Lookup("target")
	fnVal, _ := ctx.Lookup("func")

	fn, ok := fnVal.(*runtime.FunctionValue)
	if !ok {
		return nil, ctx.Sink().Fail(errors.MsgUnableToInvoke(fnVal.TypeName()))
	}

	switch t := target.(type) {
	case *runtime.ArrayValue:
		for _, el := range t.Elements {
			if _, err := ctx.Invoke(fn, []runtime.Value{runtime.DeepCopy(el)}, token.Position{}); err != nil {
				return nil, err
			}
		}
	case *runtime.DictValue:
		for i, k := range t.Keys {
			args := []runtime.Value{runtime.DeepCopy(k), runtime.DeepCopy(t.Values[i])}
			if _, err := ctx.Invoke(fn, args, token.Position{}); err != nil {
				return nil, err
			}
		}
	default:
		return nil, ctx.Sink().Fail("map: %s is not an array or dict", target.TypeName())
	}
	return nil, nil
}

func assertHandler(ctx *evaluator.Context) (runtime.Value, *errors.EvalError) {
	condVal, _ := ctx.Lookup("condition")
	cond, ok := condVal.(*runtime.BooleanValue)
	if !ok {
		return nil, ctx.Sink().Fail(errors.MsgOperandNotBool())
	}
	if !cond.Value {
		return nil, ctx.Sink().Fail(errors.MsgAssertFailed())
	}
	return nil, nil
}

func lenHandler(ctx *evaluator.Context) (runtime.Value, *errors.EvalError) {
	v, _ := ctx.Lookup("value")
	switch vv := v.(type) {
	case *runtime.StringValue:
		return &runtime.IntegerValue{Value: int64(len(vv.Value))}, nil
	case *runtime.ArrayValue:
		return &runtime.IntegerValue{Value: int64(len(vv.Elements))}, nil
	case *runtime.DictValue:
		return &runtime.IntegerValue{Value: int64(len(vv.Keys))}, nil
	default:
		return nil, ctx.Sink().Fail("len: %s has no length", v.TypeName())
	}
}

func typeHandler(ctx *evaluator.Context) (runtime.Value, *errors.EvalError) {
	v, _ := ctx.Lookup("value")
	return &runtime.StringValue{Value: v.TypeName()}, nil
}
