package parser

import (
	"testing"

	"github.com/glintlang/glint/internal/arena"
	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/internal/lexer"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	a := arena.New()
	p := New(lexer.New(input), a)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return program
}

func TestOperatorPrecedence(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3":        "(1 + (2 * 3))",
		"(1 + 2) * 3":      "((1 + 2) * 3)",
		"a == b && c || d": "(((a == b) && c) || d)",
		"!true == false":   "((!true) == false)",
		"a[0] + 1":         "((a[0]) + 1)",
		"f(1, 2) + g(3)":   "(f(1, 2) + g(3))",
	}
	for input, want := range cases {
		program := parseProgram(t, input+";")
		require.Len(t, program.Statements, 1)
		stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
		if !ok {
			// ParseProgram does not desugar top-level statements, so these
			// inputs stay ExpressionStatements; this only covers a return.
			ret := program.Statements[0].(*ast.ReturnStatement)
			require.Equal(t, want, ret.ReturnValue.String())
			continue
		}
		require.Equal(t, want, stmt.Expression.String())
	}
}

func TestImplicitTrailingReturnDesugarsLastBareExpression(t *testing.T) {
	program := parseProgram(t, `let f = fn(x){ x + 1 };`)
	letStmt := program.Statements[0].(*ast.LetStatement)
	lit := letStmt.Value.(*ast.FunctionLiteral)
	require.Len(t, lit.Body.Statements, 1)
	_, ok := lit.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok, "trailing bare expression should desugar to a return statement")
}

func TestBareExpressionStatementMidBlockIsAnError(t *testing.T) {
	a := arena.New()
	p := New(lexer.New(`let f = fn(x){ x + 1; x + 2 };`), a)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestCallExpressionIsNeverAnErrorMidBlock(t *testing.T) {
	// A function-call expression statement is allowed anywhere, not just
	// in trailing position, since calls are typically used for effect.
	program := parseProgram(t, `let f = fn(){ puts(1); puts(2); };`)
	letStmt := program.Statements[0].(*ast.LetStatement)
	lit := letStmt.Value.(*ast.FunctionLiteral)
	require.Len(t, lit.Body.Statements, 2)
}

func TestFunctionLiteralCaptureNamesComputed(t *testing.T) {
	program := parseProgram(t, `let f = fn(x){ return x + y; };`)
	letStmt := program.Statements[0].(*ast.LetStatement)
	lit := letStmt.Value.(*ast.FunctionLiteral)
	require.Equal(t, []string{"y"}, lit.CaptureNames)
}

func TestDictAndArrayLiteralsParse(t *testing.T) {
	program := parseProgram(t, `let d = {"a": 1, "b": 2}; let a = [1, 2, 3];`)
	require.Len(t, program.Statements, 2)

	dict := program.Statements[0].(*ast.LetStatement).Value.(*ast.DictLiteral)
	require.Len(t, dict.Keys, 2)

	arr := program.Statements[1].(*ast.LetStatement).Value.(*ast.ArrayLiteral)
	require.Len(t, arr.Elements, 3)
}

func TestIfStatementRequiresBraces(t *testing.T) {
	a := arena.New()
	p := New(lexer.New(`if (true) puts(1);`), a)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestReassignStatementParses(t *testing.T) {
	program := parseProgram(t, `let a = 1; a = 2;`)
	reassign, ok := program.Statements[1].(*ast.ReassignStatement)
	require.True(t, ok)
	require.Equal(t, "a", reassign.Name.Value)
}
