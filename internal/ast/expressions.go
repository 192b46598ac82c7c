package ast

import (
	"bytes"
	"strings"

	"github.com/glintlang/glint/pkg/token"
)

// PrefixExpression is a unary prefix operator application; Glint has only
// one prefix operator, `!`.
type PrefixExpression struct {
	Token    token.Token // the prefix token, e.g. '!'
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) Pos() token.Position  { return pe.Token.Pos }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

// InfixExpression is a binary operator application.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) Pos() token.Position  { return ie.Token.Pos }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

// CallExpression invokes Function with Arguments, e.g. `f(1, 2)`.
type CallExpression struct {
	Token     token.Token // the '('
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

// IndexExpression is `left[index]`, used against both arrays and dicts.
type IndexExpression struct {
	Token token.Token // the '['
	Left  Expression
	Index Expression
}

func (ix *IndexExpression) expressionNode()      {}
func (ix *IndexExpression) TokenLiteral() string { return ix.Token.Literal }
func (ix *IndexExpression) Pos() token.Position  { return ix.Token.Pos }
func (ix *IndexExpression) String() string {
	return "(" + ix.Left.String() + "[" + ix.Index.String() + "])"
}

// FunctionLiteral is `fn(p1, p2) { ... }`.
//
// CaptureNames is filled in by the parser (internal/parser) after the body
// is parsed: the ordered, de-duplicated list of identifiers referenced free
// inside Body (i.e. not one of Parameters and not the target of a Let
// appearing before the reference). The evaluator consults it verbatim when
// finalizing closure captures at the defining scope's exit.
type FunctionLiteral struct {
	Token        token.Token // the 'fn' keyword
	Parameters   []*Identifier
	Body         *BlockStatement
	CaptureNames []string
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) Pos() token.Position  { return fl.Token.Pos }
func (fl *FunctionLiteral) String() string {
	params := make([]string, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = p.String()
	}
	var out bytes.Buffer
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fl.Body.String())
	return out.String()
}
