package ast

import (
	"bytes"

	"github.com/glintlang/glint/pkg/token"
)

// LetStatement declares a new variable in the current scope:
// `let name = value;`.
type LetStatement struct {
	Token token.Token // the 'let' keyword
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) Pos() token.Position  { return ls.Token.Pos }
func (ls *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReassignStatement assigns a new value to an already-declared variable:
// `name = value;`.
type ReassignStatement struct {
	Token token.Token // the identifier token
	Name  *Identifier
	Value Expression
}

func (rs *ReassignStatement) statementNode()       {}
func (rs *ReassignStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReassignStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReassignStatement) String() string {
	return rs.Name.String() + " = " + rs.Value.String() + ";"
}

// ReturnStatement exits the enclosing function, optionally with a value.
// ReturnValue is nil for a bare `return;`.
type ReturnStatement struct {
	Token       token.Token // the 'return' keyword (or, for a synthesized
	                        // implicit trailing return, the wrapped expression's token)
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.ReturnValue == nil {
		return "return;"
	}
	return "return " + rs.ReturnValue.String() + ";"
}

// BlockStatement is a `{ ... }` sequence of statements; it introduces a
// fresh Block scope when executed, per the evaluator's scope_in/scope_out
// discipline.
type BlockStatement struct {
	Token      token.Token // the '{'
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// IfStatement is `if (cond) consequence [else alternative]`. Alternative
// is nil when there is no else-branch.
type IfStatement struct {
	Token       token.Token // the 'if' keyword
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.Consequence.String())
	if is.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// ExpressionStatement wraps an expression used for its side effects.
// Inside a block the parser only leaves this in place where Expression is
// a *CallExpression (a bare non-call expression there is either a parse
// error or, as the final statement in the block, desugared into a
// ReturnStatement — see internal/parser). Top-level statements are not
// checked, so there Expression may be any expression; the evaluator
// evaluates it without a call-only check.
type ExpressionStatement struct {
	Token      token.Token // the expression's first token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ""
	}
	return es.Expression.String() + ";"
}

// ExternalInvocationStatement is the body of a builtin function: it
// dispatches by numeric registry id to a host-implemented handler, which
// runs against the current scope (its declared parameters are ordinary
// local bindings). These nodes are never produced by the parser;
// internal/builtins (FunctionInfo.Value) synthesizes one
// FunctionLiteral/ExternalInvocationStatement pair per registered builtin.
type ExternalInvocationStatement struct {
	Token token.Token
	ID    int
	Name  string
}

func (ei *ExternalInvocationStatement) statementNode()       {}
func (ei *ExternalInvocationStatement) TokenLiteral() string { return ei.Token.Literal }
func (ei *ExternalInvocationStatement) Pos() token.Position  { return ei.Token.Pos }
func (ei *ExternalInvocationStatement) String() string {
	return "<external:" + ei.Name + ">"
}
