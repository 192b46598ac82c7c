package evaluator

import (
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/runtime"
	"github.com/glintlang/glint/pkg/token"
)

// evalInfix implements the binary operator table of spec.md §4.7. The
// parser has already resolved precedence; this function only executes
// the operator the tree hands it, per the section's closing note.
func (e *Evaluator) evalInfix(pos token.Position, op string, left, right runtime.Value) (runtime.Value, *errors.EvalError) {
	switch op {
	case "+":
		return e.evalPlus(pos, left, right)
	case "-":
		li, ri, err := e.bothInts(pos, "-", left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.IntegerValue{Value: li - ri}, nil
	case "*":
		li, ri, err := e.bothInts(pos, "*", left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.IntegerValue{Value: li * ri}, nil
	case "/":
		li, ri, err := e.bothInts(pos, "/", left, right)
		if err != nil {
			return nil, err
		}
		if ri == 0 {
			return nil, e.sink.FailAt(pos, errors.MsgDivisionByZero())
		}
		return &runtime.IntegerValue{Value: li / ri}, nil
	case "==":
		return &runtime.BooleanValue{Value: left.Equal(right)}, nil
	case "!=":
		return &runtime.BooleanValue{Value: !left.Equal(right)}, nil
	case "<":
		li, ri, err := e.bothInts(pos, "<", left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: li < ri}, nil
	case ">":
		li, ri, err := e.bothInts(pos, ">", left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: li > ri}, nil
	case "&&":
		lb, rb, err := e.bothBools(pos, "&&", left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: lb && rb}, nil
	case "||":
		lb, rb, err := e.bothBools(pos, "||", left, right)
		if err != nil {
			return nil, err
		}
		return &runtime.BooleanValue{Value: lb || rb}, nil
	default:
		return nil, e.sink.FailAt(pos, "unknown operator %s", op)
	}
}

func (e *Evaluator) bothInts(pos token.Position, op string, left, right runtime.Value) (int64, int64, *errors.EvalError) {
	li, lok := left.(*runtime.IntegerValue)
	ri, rok := right.(*runtime.IntegerValue)
	if !lok || !rok {
		return 0, 0, e.sink.FailAt(pos, errors.MsgBadOperandTypes(op, left.TypeName(), right.TypeName()))
	}
	return li.Value, ri.Value, nil
}

func (e *Evaluator) bothBools(pos token.Position, op string, left, right runtime.Value) (bool, bool, *errors.EvalError) {
	lb, lok := left.(*runtime.BooleanValue)
	rb, rok := right.(*runtime.BooleanValue)
	if !lok || !rok {
		return false, false, e.sink.FailAt(pos, errors.MsgBadOperandTypes(op, left.TypeName(), right.TypeName()))
	}
	return lb.Value, rb.Value, nil
}

// evalPlus handles `+`'s four valid operand shapes (spec.md §4.7).
func (e *Evaluator) evalPlus(pos token.Position, left, right runtime.Value) (runtime.Value, *errors.EvalError) {
	switch l := left.(type) {
	case *runtime.IntegerValue:
		r, ok := right.(*runtime.IntegerValue)
		if !ok {
			return nil, e.sink.FailAt(pos, errors.MsgBadOperandTypes("+", left.TypeName(), right.TypeName()))
		}
		return &runtime.IntegerValue{Value: l.Value + r.Value}, nil

	case *runtime.StringValue:
		return &runtime.StringValue{Value: l.Value + runtime.RenderTopLevel(right)}, nil

	case *runtime.ArrayValue:
		r, ok := right.(*runtime.ArrayValue)
		if !ok {
			return nil, e.sink.FailAt(pos, errors.MsgBadOperandTypes("+", left.TypeName(), right.TypeName()))
		}
		elems := make([]runtime.Value, 0, len(l.Elements)+len(r.Elements))
		for _, el := range l.Elements {
			elems = append(elems, runtime.AddRef(runtime.DeepCopy(el)))
		}
		for _, el := range r.Elements {
			elems = append(elems, runtime.AddRef(runtime.DeepCopy(el)))
		}
		return &runtime.ArrayValue{Elements: elems}, nil

	case *runtime.DictValue:
		r, ok := right.(*runtime.DictValue)
		if !ok {
			return nil, e.sink.FailAt(pos, errors.MsgBadOperandTypes("+", left.TypeName(), right.TypeName()))
		}
		result := &runtime.DictValue{}
		for i, k := range l.Keys {
			result.Keys = append(result.Keys, runtime.AddRef(runtime.DeepCopy(k)))
			result.Values = append(result.Values, runtime.AddRef(runtime.DeepCopy(l.Values[i])))
		}
		for i, k := range r.Keys {
			if result.IndexOfKey(k) != -1 {
				return nil, e.sink.FailAt(pos, errors.MsgDuplicateKey())
			}
			result.Keys = append(result.Keys, runtime.AddRef(runtime.DeepCopy(k)))
			result.Values = append(result.Values, runtime.AddRef(runtime.DeepCopy(r.Values[i])))
		}
		return result, nil

	default:
		return nil, e.sink.FailAt(pos, errors.MsgBadOperandTypes("+", left.TypeName(), right.TypeName()))
	}
}
