package evaluator

import "github.com/glintlang/glint/internal/runtime"

// ReturnKind is the three-way status from spec.md's Glossary entry for
// ReturnAction, distinguishing fallthrough from an explicit return.
type ReturnKind int

const (
	DidntReturn ReturnKind = iota
	ReturnedVoid
	ReturnedValue
)

// ReturnAction is what statement execution propagates up through nested
// blocks (spec.md §4.6).
type ReturnAction struct {
	Kind  ReturnKind
	Value runtime.Value // meaningful only when Kind == ReturnedValue
}

// Fallthrough is the action for a block that ran to its end without a
// return statement firing.
var Fallthrough = ReturnAction{Kind: DidntReturn}

// VoidReturn is the action for a bare `return;`.
var VoidReturn = ReturnAction{Kind: ReturnedVoid}

// ValueReturn is the action for `return expr;`.
func ValueReturn(v runtime.Value) ReturnAction {
	return ReturnAction{Kind: ReturnedValue, Value: v}
}
