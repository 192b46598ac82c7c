package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ident(name string) *Identifier { return &Identifier{Value: name} }

func TestComputeCapturesExcludesOwnParameters(t *testing.T) {
	fn := &FunctionLiteral{
		Parameters: []*Identifier{ident("x")},
		Body: &BlockStatement{
			Statements: []Statement{
				&ReturnStatement{ReturnValue: &InfixExpression{
					Left: ident("x"), Operator: "+", Right: ident("y"),
				}},
			},
		},
	}
	ComputeCaptures(fn)
	require.Equal(t, []string{"y"}, fn.CaptureNames)
}

func TestComputeCapturesExcludesNamesBoundByEarlierLet(t *testing.T) {
	fn := &FunctionLiteral{
		Body: &BlockStatement{
			Statements: []Statement{
				&LetStatement{Name: ident("z"), Value: ident("outer")},
				&ReturnStatement{ReturnValue: ident("z")},
			},
		},
	}
	ComputeCaptures(fn)
	require.Equal(t, []string{"outer"}, fn.CaptureNames)
}

func TestComputeCapturesPropagatesThroughNestedFunctionLiteral(t *testing.T) {
	inner := &FunctionLiteral{
		Body: &BlockStatement{
			Statements: []Statement{
				&ReturnStatement{ReturnValue: ident("who")},
			},
		},
	}
	outer := &FunctionLiteral{
		Parameters: []*Identifier{ident("who")},
		Body: &BlockStatement{
			Statements: []Statement{
				&ReturnStatement{ReturnValue: inner},
			},
		},
	}
	ComputeCaptures(outer)

	// inner needs "who"; outer binds it as a parameter, so outer itself
	// captures nothing free from its own enclosing scope.
	require.Equal(t, []string{"who"}, inner.CaptureNames)
	require.Empty(t, outer.CaptureNames)
}

func TestComputeCapturesDeduplicatesRepeatedUses(t *testing.T) {
	fn := &FunctionLiteral{
		Body: &BlockStatement{
			Statements: []Statement{
				&ExpressionStatement{Expression: &InfixExpression{
					Left: ident("a"), Operator: "+", Right: ident("a"),
				}},
			},
		},
	}
	ComputeCaptures(fn)
	require.Equal(t, []string{"a"}, fn.CaptureNames)
}
