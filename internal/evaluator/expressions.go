package evaluator

import (
	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/runtime"
)

// evalExpression evaluates expr to a Value. voidAllowed is only
// meaningful for a CallExpression in tail/statement position: it tells
// the call whether a function that doesn't return a value is an error
// or should just yield Void (spec.md §4.5's return-value rule).
func (e *Evaluator) evalExpression(expr ast.Expression, voidAllowed bool) (runtime.Value, *errors.EvalError) {
	switch ex := expr.(type) {
	case *ast.IntegerLiteral:
		return &runtime.IntegerValue{Value: ex.Value}, nil
	case *ast.BooleanLiteral:
		return &runtime.BooleanValue{Value: ex.Value}, nil
	case *ast.StringLiteral:
		return &runtime.StringValue{Value: ex.Value}, nil
	case *ast.Identifier:
		v, ok := e.scopes.Lookup(ex.Value)
		if !ok {
			return nil, e.sink.FailAt(ex.Pos(), errors.MsgIdentifierNotFound(ex.Value))
		}
		return runtime.DeepCopy(v), nil
	case *ast.PrefixExpression:
		return e.evalPrefix(ex)
	case *ast.InfixExpression:
		return e.evalInfixExpr(ex)
	case *ast.FunctionLiteral:
		return e.evalFunctionLiteral(ex), nil
	case *ast.CallExpression:
		return e.evalCall(ex, voidAllowed)
	case *ast.IndexExpression:
		return e.evalIndex(ex)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(ex)
	case *ast.DictLiteral:
		return e.evalDictLiteral(ex)
	default:
		return nil, e.sink.FailAt(expr.Pos(), "unknown expression type %T", expr)
	}
}

func (e *Evaluator) evalPrefix(ex *ast.PrefixExpression) (runtime.Value, *errors.EvalError) {
	right, err := e.evalExpression(ex.Right, false)
	if err != nil {
		return nil, err
	}
	b, ok := right.(*runtime.BooleanValue)
	if !ok {
		return nil, e.sink.FailAt(ex.Pos(), errors.MsgOperandNotBool())
	}
	return &runtime.BooleanValue{Value: !b.Value}, nil
}

// evalInfixExpr always evaluates both operands, including for && and
// ||: spec.md §9 explicitly rejects short-circuiting so that both
// sides' side effects (a call, say) are consistently observed.
func (e *Evaluator) evalInfixExpr(ex *ast.InfixExpression) (runtime.Value, *errors.EvalError) {
	left, err := e.evalExpression(ex.Left, false)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(ex.Right, false)
	if err != nil {
		return nil, err
	}
	return e.evalInfix(ex.Pos(), ex.Operator, left, right)
}

// evalFunctionLiteral constructs an unlocked FunctionValue and
// registers it with the current scope so its captures get finalized
// when that scope exits (spec.md §4.5 steps 1-3).
func (e *Evaluator) evalFunctionLiteral(lit *ast.FunctionLiteral) runtime.Value {
	fv := runtime.NewFunctionValue(lit, "")
	e.scopes.RegisterPendingFunction(fv)
	return fv
}

func (e *Evaluator) evalCall(ex *ast.CallExpression, voidAllowed bool) (runtime.Value, *errors.EvalError) {
	calleeVal, err := e.evalExpression(ex.Function, false)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*runtime.FunctionValue)
	if !ok {
		return nil, e.sink.FailAt(ex.Pos(), errors.MsgUnableToInvoke(calleeVal.TypeName()))
	}

	// The display name used in stack traces and renders is the callee
	// expression's textual name at this call site (spec.md §4.1), not a
	// property fixed at the function's definition.
	if name, ok := ex.Function.(*ast.Identifier); ok {
		fn.CalleeName = name.Value
	}

	args := make([]runtime.Value, len(ex.Arguments))
	for i, a := range ex.Arguments {
		v, argErr := e.evalExpression(a, false)
		if argErr != nil {
			return nil, argErr
		}
		args[i] = v
	}

	action, invErr := e.invoke(fn, args, ex.Pos())
	if invErr != nil {
		return nil, invErr
	}

	if action.Kind == ReturnedValue {
		return action.Value, nil
	}
	if !voidAllowed {
		return nil, e.sink.FailAt(ex.Pos(), errors.MsgFunctionDidntReturn())
	}
	return runtime.Void, nil
}

func (e *Evaluator) evalIndex(ex *ast.IndexExpression) (runtime.Value, *errors.EvalError) {
	left, err := e.evalExpression(ex.Left, false)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpression(ex.Index, false)
	if err != nil {
		return nil, err
	}

	switch coll := left.(type) {
	case *runtime.ArrayValue:
		i, ok := idx.(*runtime.IntegerValue)
		if !ok {
			return nil, e.sink.FailAt(ex.Pos(), errors.MsgBadOperandTypes("[]", left.TypeName(), idx.TypeName()))
		}
		if i.Value < 0 || int(i.Value) >= len(coll.Elements) {
			return nil, e.sink.FailAt(ex.Pos(), errors.MsgIndexOutOfRange())
		}
		return runtime.DeepCopy(coll.Elements[i.Value]), nil

	case *runtime.DictValue:
		j := coll.IndexOfKey(idx)
		if j == -1 {
			return nil, e.sink.FailAt(ex.Pos(), errors.MsgKeyNotFound())
		}
		return runtime.DeepCopy(coll.Values[j]), nil

	default:
		return nil, e.sink.FailAt(ex.Pos(), errors.MsgCannotIndex(left.TypeName()))
	}
}

func (e *Evaluator) evalArrayLiteral(ex *ast.ArrayLiteral) (runtime.Value, *errors.EvalError) {
	elems := make([]runtime.Value, len(ex.Elements))
	for i, elExpr := range ex.Elements {
		v, err := e.evalExpression(elExpr, false)
		if err != nil {
			return nil, err
		}
		elems[i] = runtime.AddRef(v)
	}
	return &runtime.ArrayValue{Elements: elems}, nil
}

func (e *Evaluator) evalDictLiteral(ex *ast.DictLiteral) (runtime.Value, *errors.EvalError) {
	dict := &runtime.DictValue{}
	for i := range ex.Keys {
		k, err := e.evalExpression(ex.Keys[i], false)
		if err != nil {
			return nil, err
		}
		v, err := e.evalExpression(ex.Values[i], false)
		if err != nil {
			return nil, err
		}
		if dict.IndexOfKey(k) != -1 {
			return nil, e.sink.FailAt(ex.Pos(), errors.MsgDuplicateKey())
		}
		dict.Keys = append(dict.Keys, runtime.AddRef(k))
		dict.Values = append(dict.Values, runtime.AddRef(v))
	}
	return dict, nil
}
