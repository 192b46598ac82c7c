package parser

import (
	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/pkg/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseReassignStatement()
		}
		return p.parseExpressionStatement()
	case token.SEMICOLON:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.intern(p.curToken.Literal)}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	if p.arena != nil {
		p.arena.NewNode(stmt)
	}
	return stmt
}

func (p *Parser) parseReassignStatement() ast.Statement {
	stmt := &ast.ReassignStatement{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.intern(p.curToken.Literal)},
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	if p.arena != nil {
		p.arena.NewNode(stmt)
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		if p.arena != nil {
			p.arena.NewNode(stmt)
		}
		return stmt
	}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	if p.arena != nil {
		p.arena.NewNode(stmt)
	}
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Alternative = p.parseBlockStatement()
	}

	if p.arena != nil {
		p.arena.NewNode(stmt)
	}
	return stmt
}

// parseExpressionStatement parses a bare expression followed by an
// optional ';'. Inside a block this is only allowed in statement position
// when the expression is a call (spec.md §4.6); anything else is only
// valid as the trailing, implicitly-returned expression of the block,
// which parseBlockStatement checks and desugars after the fact.
// ParseProgram applies no such check to top-level statements.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	if p.arena != nil {
		p.arena.NewNode(stmt)
	}
	return stmt
}

// parseBlockStatement parses `{ STATEMENT* }`, then applies the implicit
// trailing-return desugaring: if the final statement is a bare
// non-call expression, it becomes the block's ReturnStatement instead.
// Any other non-call expression statement that isn't last is a parse
// error, matching the grammar's call-only rule for expression statements.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	p.desugarTrailingReturn(block)

	if p.arena != nil {
		p.arena.NewNode(block)
	}
	return block
}

func (p *Parser) desugarTrailingReturn(block *ast.BlockStatement) {
	last := len(block.Statements) - 1
	for i, stmt := range block.Statements {
		es, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		if _, isCall := es.Expression.(*ast.CallExpression); isCall {
			continue
		}
		if i != last {
			p.errors = append(p.errors, &Error{
				Pos: es.Pos(),
				Msg: "expression statement must be a function call unless it is the final statement of a block",
			})
			continue
		}
		block.Statements[i] = &ast.ReturnStatement{Token: es.Token, ReturnValue: es.Expression}
	}
}
