// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed by the evaluator.
//
// Every node carries the token it started from, exposes
// TokenLiteral/String/Pos, and statement/expression nodes are distinguished
// by an unexported marker method rather than an open class hierarchy.
package ast

import (
	"bytes"
	"strings"

	"github.com/glintlang/glint/pkg/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is a Node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node that performs an action without itself producing a
// Value (though it may contain expressions that do).
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Identifier names a variable, parameter, or function being referenced.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }

// IntegerLiteral is a decimal integer constant.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() token.Position  { return bl.Token.Pos }

// StringLiteral is a quoted string constant; Value holds the decoded
// (escape-processed) text.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }
func (sl *StringLiteral) Pos() token.Position  { return sl.Token.Pos }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Token    token.Token // the '['
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) Pos() token.Position  { return al.Token.Pos }
func (al *ArrayLiteral) String() string {
	elems := make([]string, len(al.Elements))
	for i, e := range al.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// DictLiteral is `{k1: v1, k2: v2, ...}`; Keys[i] pairs with Values[i].
type DictLiteral struct {
	Token  token.Token // the '{'
	Keys   []Expression
	Values []Expression
}

func (dl *DictLiteral) expressionNode()      {}
func (dl *DictLiteral) TokenLiteral() string { return dl.Token.Literal }
func (dl *DictLiteral) Pos() token.Position  { return dl.Token.Pos }
func (dl *DictLiteral) String() string {
	pairs := make([]string, len(dl.Keys))
	for i := range dl.Keys {
		pairs[i] = dl.Keys[i].String() + ": " + dl.Values[i].String()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
