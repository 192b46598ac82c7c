package ast

// ComputeCaptures fills in fn.CaptureNames: the ordered, de-duplicated list
// of identifiers referenced free inside fn's body — used but not bound by
// fn's own parameters or by a `let` appearing before the reference in the
// same or an enclosing block of fn's own body.
//
// The walk is grounded on the CapturesVisitor pattern from the gotypst
// reference example (other_examples' boergens-gotypst eval/captures.go):
// a stack of "bound so far" name sets that grows on block entry and shrinks
// on block exit, with every identifier reference checked against the whole
// stack before being recorded as a capture candidate.
//
// Each FunctionLiteral's captures are computed independently of its
// enclosing function: a name is free for fn if fn itself never binds it,
// regardless of whether some outer function happens to bind it. A nested
// function literal encountered while walking fn's body has its own
// CaptureNames computed first (recursively, reusing a non-nil list the
// parser's own bottom-up calls already filled in; a literal with no
// captures is walked again); any name that nested literal needs
// and fn does not itself bind is then also recorded as a capture for fn,
// so it propagates outward exactly as far as it is needed.
func ComputeCaptures(fn *FunctionLiteral) {
	c := &captureCollector{
		bound: []map[string]bool{{}},
		seen:  map[string]bool{},
	}
	for _, p := range fn.Parameters {
		c.bind(p.Value)
	}
	c.visitBlock(fn.Body)
	fn.CaptureNames = c.free
}

type captureCollector struct {
	bound []map[string]bool
	free  []string
	seen  map[string]bool
}

func (c *captureCollector) pushScope() { c.bound = append(c.bound, map[string]bool{}) }
func (c *captureCollector) popScope()  { c.bound = c.bound[:len(c.bound)-1] }

func (c *captureCollector) bind(name string) {
	c.bound[len(c.bound)-1][name] = true
}

func (c *captureCollector) isBound(name string) bool {
	for i := len(c.bound) - 1; i >= 0; i-- {
		if c.bound[i][name] {
			return true
		}
	}
	return false
}

func (c *captureCollector) use(name string) {
	if c.isBound(name) || c.seen[name] {
		return
	}
	c.seen[name] = true
	c.free = append(c.free, name)
}

func (c *captureCollector) visitBlock(block *BlockStatement) {
	if block == nil {
		return
	}
	c.pushScope()
	for _, stmt := range block.Statements {
		c.visitStatement(stmt)
	}
	c.popScope()
}

func (c *captureCollector) visitStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *LetStatement:
		c.visitExpr(s.Value)
		c.bind(s.Name.Value)
	case *ReassignStatement:
		c.use(s.Name.Value)
		c.visitExpr(s.Value)
	case *ReturnStatement:
		if s.ReturnValue != nil {
			c.visitExpr(s.ReturnValue)
		}
	case *IfStatement:
		c.visitExpr(s.Condition)
		c.visitBlock(s.Consequence)
		if s.Alternative != nil {
			c.visitBlock(s.Alternative)
		}
	case *ExpressionStatement:
		c.visitExpr(s.Expression)
	case *BlockStatement:
		c.visitBlock(s)
	case *ExternalInvocationStatement:
		// builtins have no user-source body to walk
	}
}

func (c *captureCollector) visitExpr(expr Expression) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *Identifier:
		c.use(e.Value)
	case *IntegerLiteral, *BooleanLiteral, *StringLiteral:
		// no references
	case *ArrayLiteral:
		for _, el := range e.Elements {
			c.visitExpr(el)
		}
	case *DictLiteral:
		for i := range e.Keys {
			c.visitExpr(e.Keys[i])
			c.visitExpr(e.Values[i])
		}
	case *PrefixExpression:
		c.visitExpr(e.Right)
	case *InfixExpression:
		c.visitExpr(e.Left)
		c.visitExpr(e.Right)
	case *CallExpression:
		c.visitExpr(e.Function)
		for _, a := range e.Arguments {
			c.visitExpr(a)
		}
	case *IndexExpression:
		c.visitExpr(e.Left)
		c.visitExpr(e.Index)
	case *FunctionLiteral:
		if e.CaptureNames == nil {
			ComputeCaptures(e)
		}
		for _, name := range e.CaptureNames {
			c.use(name)
		}
	}
}
