package errors

import (
	"fmt"
	"strings"

	"github.com/glintlang/glint/pkg/token"
)

// StackFrame is a single call-stack entry: the call-site position and the
// display name of the callee, per spec.md §3.3.
type StackFrame struct {
	Position     *token.Position
	FunctionName string
}

// String renders a frame as spec.md §7's "> in <frame-name>" line.
func (sf StackFrame) String() string {
	if sf.Position == nil {
		return fmt.Sprintf("> in %s", sf.FunctionName)
	}
	return fmt.Sprintf("> in %s (%s)", sf.FunctionName, sf.Position.String())
}

// StackTrace is the evaluator's call stack, oldest (bottom) frame first.
type StackTrace []StackFrame

// String renders the stack innermost-first, one frame per line, per
// spec.md §7.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Reverse returns a copy of st with frame order reversed.
func (st StackTrace) Reverse() StackTrace {
	reversed := make(StackTrace, len(st))
	for i, frame := range st {
		reversed[len(st)-1-i] = frame
	}
	return reversed
}

// Top returns the innermost frame, or nil if the stack is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Bottom returns the outermost frame, or nil if the stack is empty.
func (st StackTrace) Bottom() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[0]
}

// Depth returns the number of frames currently on the stack.
func (st StackTrace) Depth() int {
	return len(st)
}

// NewStackFrame builds a StackFrame for a call to functionName at pos.
func NewStackFrame(functionName string, pos *token.Position) StackFrame {
	return StackFrame{FunctionName: functionName, Position: pos}
}

// NewStackTrace returns an empty stack trace.
func NewStackTrace() StackTrace {
	return make(StackTrace, 0)
}
