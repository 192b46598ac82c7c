package errors_test

import (
	"testing"

	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/pkg/token"
	"github.com/stretchr/testify/require"
)

func TestStackFrameStringWithPosition(t *testing.T) {
	frame := errors.NewStackFrame("add", &token.Position{Line: 10, Column: 5})
	require.Equal(t, "> in add (10:5)", frame.String())
}

func TestStackFrameStringWithoutPosition(t *testing.T) {
	frame := errors.NewStackFrame("main", nil)
	require.Equal(t, "> in main", frame.String())
}

func TestStackTraceStringRendersInnermostFirst(t *testing.T) {
	trace := errors.NewStackTrace()
	trace = append(trace,
		errors.NewStackFrame("main", &token.Position{Line: 1, Column: 1}),
		errors.NewStackFrame("outer", &token.Position{Line: 3, Column: 2}),
		errors.NewStackFrame("inner", &token.Position{Line: 7, Column: 4}),
	)

	want := "> in inner (7:4)\n> in outer (3:2)\n> in main (1:1)"
	require.Equal(t, want, trace.String())
}

func TestStackTraceStringEmpty(t *testing.T) {
	require.Equal(t, "", errors.NewStackTrace().String())
}

func TestStackTraceReverse(t *testing.T) {
	trace := errors.StackTrace{
		errors.NewStackFrame("main", nil),
		errors.NewStackFrame("inner", nil),
	}

	reversed := trace.Reverse()
	require.Equal(t, "inner", reversed[0].FunctionName)
	require.Equal(t, "main", reversed[1].FunctionName)
	// Reverse returns a copy; the original is untouched.
	require.Equal(t, "main", trace[0].FunctionName)
}

func TestStackTraceTopAndBottom(t *testing.T) {
	empty := errors.NewStackTrace()
	require.Nil(t, empty.Top())
	require.Nil(t, empty.Bottom())

	trace := errors.StackTrace{
		errors.NewStackFrame("main", nil),
		errors.NewStackFrame("inner", nil),
	}
	require.Equal(t, "inner", trace.Top().FunctionName)
	require.Equal(t, "main", trace.Bottom().FunctionName)
	require.Equal(t, 2, trace.Depth())
}
