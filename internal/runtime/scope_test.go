package runtime

import (
	"testing"

	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/pkg/token"
	"github.com/stretchr/testify/require"
)

func newStack() *ScopeStack {
	return NewScopeStack(NewCallStack(0))
}

func TestDeclareAndLookupSameScope(t *testing.T) {
	s := newStack()
	require.Nil(t, s.ScopeIn(ScopeBlock, nil, token.Position{}))
	require.Nil(t, s.Declare("a", &IntegerValue{Value: 1}))

	v, ok := s.Lookup("a")
	require.True(t, ok)
	require.Equal(t, int64(1), v.(*IntegerValue).Value)
}

func TestDeclareDuplicateInSameScopeFails(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("a", &IntegerValue{Value: 1}))
	err := s.Declare("a", &IntegerValue{Value: 2})
	require.NotNil(t, err)
}

func TestDeclareDuplicateAcrossBlockBoundaryFails(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("a", &IntegerValue{Value: 1}))
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	err := s.Declare("a", &IntegerValue{Value: 2})
	require.NotNil(t, err)
}

func TestDeclareDuplicateStopsAtFunctionBoundary(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("a", &IntegerValue{Value: 1}))

	fn := NewFunctionValue(&ast.FunctionLiteral{Body: &ast.BlockStatement{}}, "f")
	fn.Locked = true
	_ = s.ScopeIn(ScopeFunction, fn, token.Position{})

	// "a" is declared in the enclosing Block, but the Function boundary
	// shields the inner scope: shadowing is allowed here.
	require.Nil(t, s.Declare("a", &IntegerValue{Value: 2}))
}

func TestLookupContinuesOutwardThroughUnlockedFunctionScope(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("outer", &IntegerValue{Value: 7}))

	fn := NewFunctionValue(&ast.FunctionLiteral{Body: &ast.BlockStatement{}}, "f")
	// fn.Locked left false: still being defined (e.g. recursive self-reference).
	_ = s.ScopeIn(ScopeFunction, fn, token.Position{})

	v, ok := s.Lookup("outer")
	require.True(t, ok)
	require.Equal(t, int64(7), v.(*IntegerValue).Value)
}

func TestLookupLockedFunctionScopeConsultsOnlyCaptures(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("outer", &IntegerValue{Value: 7}))

	fn := NewFunctionValue(&ast.FunctionLiteral{Body: &ast.BlockStatement{}}, "f")
	fn.Locked = true
	fn.Captures["captured"] = &IntegerValue{Value: 99}
	_ = s.ScopeIn(ScopeFunction, fn, token.Position{})

	// "outer" is live on the stack but not in fn's captures: a locked
	// Function scope must not see past itself.
	_, ok := s.Lookup("outer")
	require.False(t, ok)

	v, ok := s.Lookup("captured")
	require.True(t, ok)
	require.Equal(t, int64(99), v.(*IntegerValue).Value)
}

func TestReassignLockedFunctionScopeBlocksOutwardWrite(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("outer", &IntegerValue{Value: 1}))

	fn := NewFunctionValue(&ast.FunctionLiteral{Body: &ast.BlockStatement{}}, "f")
	fn.Locked = true
	_ = s.ScopeIn(ScopeFunction, fn, token.Position{})

	_, err := s.Reassign("outer", &IntegerValue{Value: 2})
	require.NotNil(t, err)
}

func TestReassignUnlockedFunctionScopeReachesOutward(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("outer", &IntegerValue{Value: 1}))

	fn := NewFunctionValue(&ast.FunctionLiteral{Body: &ast.BlockStatement{}}, "f")
	_ = s.ScopeIn(ScopeFunction, fn, token.Position{})

	old, err := s.Reassign("outer", &IntegerValue{Value: 2})
	require.Nil(t, err)
	require.Equal(t, int64(1), old.(*IntegerValue).Value)

	v, _ := s.Lookup("outer")
	require.Equal(t, int64(2), v.(*IntegerValue).Value)
}

func TestCaptureFinalizationSnapshotsAtScopeExit(t *testing.T) {
	s := newStack()
	_ = s.ScopeIn(ScopeBlock, nil, token.Position{})
	require.Nil(t, s.Declare("x", &IntegerValue{Value: 1}))

	lit := &ast.FunctionLiteral{Body: &ast.BlockStatement{}, CaptureNames: []string{"x"}}
	fn := NewFunctionValue(lit, "")
	s.RegisterPendingFunction(fn)
	require.False(t, fn.Locked)

	// Mutate x after the closure literal is evaluated but before the
	// defining scope exits: the snapshot must reflect the exit-time
	// value, not the value at the moment of definition.
	_, _ = s.Reassign("x", &IntegerValue{Value: 42})

	s.ScopeOut()

	require.True(t, fn.Locked)
	captured, ok := fn.Captures["x"]
	require.True(t, ok)
	require.Equal(t, int64(42), captured.(*IntegerValue).Value)
}
