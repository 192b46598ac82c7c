package evaluator

import (
	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/runtime"
)

// execBlock performs spec.md §4.6's Block rule: push a Block scope, run
// statements in order until one returns or the block ends, pop the
// scope (which finalizes any functions defined inside it), propagate
// whatever ReturnAction resulted.
func (e *Evaluator) execBlock(block *ast.BlockStatement) (ReturnAction, *errors.EvalError) {
	if err := e.scopes.ScopeIn(runtime.ScopeBlock, nil, block.Pos()); err != nil {
		return Fallthrough, err
	}

	action := Fallthrough
	var err *errors.EvalError
	for _, stmt := range block.Statements {
		action, err = e.execStatement(stmt)
		if err != nil || action.Kind != DidntReturn {
			break
		}
	}

	e.scopes.ScopeOut()
	return action, err
}

func (e *Evaluator) execStatement(stmt ast.Statement) (ReturnAction, *errors.EvalError) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		return e.execBlock(s)
	case *ast.LetStatement:
		return Fallthrough, e.execLet(s)
	case *ast.ReassignStatement:
		return Fallthrough, e.execReassign(s)
	case *ast.ReturnStatement:
		return e.execReturn(s)
	case *ast.IfStatement:
		return e.execIf(s)
	case *ast.ExpressionStatement:
		return Fallthrough, e.execExpressionStatement(s)
	case *ast.ExternalInvocationStatement:
		return e.execExternalInvocation(s)
	default:
		return Fallthrough, e.sink.FailAt(stmt.Pos(), "unknown statement type %T", stmt)
	}
}

// execExpressionStatement evaluates an expression statement for its side
// effects, with voidAllowed set because a call used as a statement may
// legitimately not return a value. Inside a block the parser has already
// turned a trailing non-call expression into a return and rejected any
// other non-call one; a top-level statement may be any expression, and
// it is evaluated here without a call-only check.
func (e *Evaluator) execExpressionStatement(s *ast.ExpressionStatement) *errors.EvalError {
	_, err := e.evalExpression(s.Expression, true)
	return err
}

func (e *Evaluator) execLet(s *ast.LetStatement) *errors.EvalError {
	val, err := e.evalExpression(s.Value, false)
	if err != nil {
		return err
	}
	runtime.AddRef(val)
	if declErr := e.scopes.Declare(s.Name.Value, val); declErr != nil {
		runtime.Release(val)
		return e.sink.FailAt(s.Pos(), "%s", declErr.Message)
	}
	return nil
}

func (e *Evaluator) execReassign(s *ast.ReassignStatement) *errors.EvalError {
	val, err := e.evalExpression(s.Value, false)
	if err != nil {
		return err
	}
	runtime.AddRef(val)
	old, reErr := e.scopes.Reassign(s.Name.Value, val)
	if reErr != nil {
		runtime.Release(val)
		return e.sink.FailAt(s.Pos(), "%s", reErr.Message)
	}
	runtime.Release(old)
	return nil
}

func (e *Evaluator) execReturn(s *ast.ReturnStatement) (ReturnAction, *errors.EvalError) {
	if s.ReturnValue == nil {
		return VoidReturn, nil
	}
	val, err := e.evalExpression(s.ReturnValue, false)
	if err != nil {
		return Fallthrough, err
	}
	runtime.AddRef(val)
	return ValueReturn(val), nil
}

func (e *Evaluator) execIf(s *ast.IfStatement) (ReturnAction, *errors.EvalError) {
	condVal, err := e.evalExpression(s.Condition, false)
	if err != nil {
		return Fallthrough, err
	}
	cond, ok := condVal.(*runtime.BooleanValue)
	if !ok {
		return Fallthrough, e.sink.FailAt(s.Condition.Pos(), errors.MsgConditionNotBool())
	}

	if cond.Value {
		return e.execBlock(s.Consequence)
	}
	if s.Alternative != nil {
		return e.execBlock(s.Alternative)
	}
	return Fallthrough, nil
}

// execExternalInvocation hands off to the installed Dispatcher — this
// is how builtins like puts and map reach the evaluator without it
// importing internal/builtins.
func (e *Evaluator) execExternalInvocation(s *ast.ExternalInvocationStatement) (ReturnAction, *errors.EvalError) {
	if e.dispatcher == nil {
		return Fallthrough, e.sink.FailAt(s.Pos(), "no builtin dispatcher installed for %s", s.Name)
	}
	val, err := e.dispatcher.Dispatch(s.ID, &Context{eval: e})
	if err != nil {
		return Fallthrough, err
	}
	if val == nil {
		return VoidReturn, nil
	}
	return ValueReturn(runtime.AddRef(val)), nil
}
