// Package runner wires the lexer, parser, evaluator, and builtin
// registry into the single entry point a CLI or embedder needs. The
// pieces stay free of cross-imports (evaluator never imports builtins,
// builtins never imports the lexer/parser); this package assembles
// them.
package runner

import (
	"fmt"
	"io"

	"github.com/glintlang/glint/internal/arena"
	"github.com/glintlang/glint/internal/ast"
	"github.com/glintlang/glint/internal/builtins"
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/evaluator"
	"github.com/glintlang/glint/internal/lexer"
	"github.com/glintlang/glint/internal/parser"
	"github.com/glintlang/glint/internal/runtime"
)

// Runner lexes, parses, and evaluates Glint source. Each Eval call builds
// a fresh evaluator whose scope stack carries the bottom-of-stack
// builtins scope for the lifetime of that call and no further, so one
// Runner can evaluate several programs in turn.
type Runner struct {
	sink     *errors.Sink
	registry *builtins.Registry
	stdout   io.Writer
}

// New creates a Runner that writes puts output to stdout and error
// reports to the sink's configured destination.
func New(stdout io.Writer, sink *errors.Sink) *Runner {
	registry := builtins.NewRegistry()
	builtins.RegisterAll(registry)
	return &Runner{sink: sink, registry: registry, stdout: stdout}
}

// Parse lexes and parses source, returning the AST and the arena that
// owns its nodes. Parser errors are returned as a single combined error.
func Parse(source string) (*ast.Program, *arena.Arena, error) {
	a := arena.New()
	l := lexer.New(source)
	p := parser.New(l, a)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		msg := fmt.Sprintf("%d parse error(s):", len(errs))
		for _, e := range errs {
			msg += "\n  " + e.Error()
		}
		return nil, nil, fmt.Errorf("%s", msg)
	}
	return program, a, nil
}

// Eval parses source and evaluates it to completion. The bottom-of-stack
// builtins scope (spec.md §4.3) is pushed once before evaluation and
// popped after, so Eval leaves no residual scope state behind it.
func (r *Runner) Eval(source string) *errors.EvalError {
	program, _, err := Parse(source)
	if err != nil {
		return r.sink.Fail("%s", err.Error())
	}

	eval := evaluator.New(r.sink, r.registry, r.stdout)
	scopes := eval.Scopes()

	if err := scopes.ScopeIn(runtime.ScopeBlock, nil, program.Pos()); err != nil {
		return err
	}
	for _, info := range r.registry.All() {
		if declErr := scopes.Declare(info.Name, info.Value()); declErr != nil {
			scopes.ScopeOut()
			return r.sink.Fail("%s", declErr.Message)
		}
	}

	runErr := eval.Run(program)
	scopes.ScopeOut()
	return runErr
}
