// Package parser implements a Pratt (operator-precedence) parser that
// turns a token stream from internal/lexer into an internal/ast tree.
//
// The cur/peek token cursor and registerPrefix/registerInfix dispatch
// tables are scaled to Glint's small grammar: no block-context stack,
// no speculative backtracking, no synchronization/error-recovery
// machinery, since the grammar has none of the ambiguous constructs
// (unit files, class bodies, nested begin/end) that would motivate
// those in a larger language.
package parser

import (
	"fmt"

	"github.com/glintlang/glint/internal/arena"
	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/internal/lexer"
	"github.com/glintlang/glint/pkg/token"
)

// Precedence levels, lowest to highest, matching spec.md §4.7.
const (
	_ int = iota
	LOWEST
	OR          // ||
	AND         // &&
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // !x
	CALL        // f(x)
	INDEX       // a[i]
)

var precedences = map[token.Type]int{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Error is a single parse failure with source position.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos.String(), e.Msg)
}

// Parser consumes tokens from a Lexer and builds an *ast.Program.
type Parser struct {
	l     *lexer.Lexer
	arena *arena.Arena

	curToken  token.Token
	peekToken token.Token

	errors []*Error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over l, allocating AST nodes and interning
// identifier/string text through a.
func New(l *lexer.Lexer, a *arena.Arena) *Parser {
	p := &Parser{l: l, arena: a}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntegerLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.BANG:     p.parsePrefixExpression,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseArrayLiteral,
		token.LBRACE:   p.parseDictLiteral,
		token.FN:       p.parseFunctionLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []*Error {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errors = append(p.errors, &Error{
		Pos: p.peekToken.Pos,
		Msg: fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type),
	})
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	p.errors = append(p.errors, &Error{
		Pos: p.curToken.Pos,
		Msg: fmt.Sprintf("no prefix parse function for %s found", t),
	})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) intern(s string) string {
	if p.arena == nil {
		return s
	}
	return p.arena.Intern(s)
}

// ParseProgram parses the whole token stream into an *ast.Program. Check
// Errors() after calling this; a non-empty error list means the returned
// program may be incomplete or nil.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}
	if p.arena != nil {
		p.arena.NewNode(program)
	}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}
