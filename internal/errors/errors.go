// Package errors is the evaluator's error sink (spec.md §4.2, §7): an
// abstract destination for `fail`/`warn` reports that formats them with
// severity, source position, and an innermost-first call-stack trace.
//
// The header/position/message layout is a single-line-plus-stack
// report (spec.md §7): no caret-pointing source excerpts, since the
// evaluator has no persistent source buffer to slice. Color comes from
// github.com/fatih/color rather than raw ANSI escapes, so the same
// on/off logic the rest of the ecosystem uses (NO_COLOR, non-tty
// detection) applies here too.
package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/glintlang/glint/pkg/token"
)

// EvalError is the Go error value returned by a `fail` call; its Message
// is the unformatted text handed to the sink (no severity/position/stack
// decoration — that only appears in what the sink writes).
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return e.Message }

// CallStacker gives the sink read access to the evaluator's live call
// stack without importing internal/runtime (which in turn depends on
// this package for EvalError).
type CallStacker interface {
	Trace() StackTrace
}

// Sink is the concrete error/warning destination installed once per run.
type Sink struct {
	w      io.Writer
	origin string
	stack  CallStacker

	errColor  *color.Color
	warnColor *color.Color
}

// NewSink creates a Sink writing to w; origin names the source (a file
// path, or "<eval>" for inline/REPL input) used in the "line:col in
// <origin>" suffix.
func NewSink(w io.Writer, origin string) *Sink {
	return &Sink{
		w:         w,
		origin:    origin,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow),
	}
}

// SetCallStack installs the evaluator's call stack, consulted when
// rendering a `fail`. Installed once at evaluator construction, per
// spec.md §4.2.
func (s *Sink) SetCallStack(stack CallStacker) {
	s.stack = stack
}

// FailRanged reports an ERROR anchored to a source range. Glint's AST
// nodes carry only a start position (spec.md doesn't require a separate
// end), so start and end both flow into the "line:col in <origin>"
// suffix as a single point; the Ranged/At/context-free split is
// preserved at the API level for callers that do track a true range.
func (s *Sink) FailRanged(start, end token.Position, format string, args ...any) *EvalError {
	return s.fail(formatOrigin(start, s.origin), format, args...)
}

// FailAt reports an ERROR anchored to a single source position.
func (s *Sink) FailAt(pos token.Position, format string, args ...any) *EvalError {
	return s.fail(formatOrigin(pos, s.origin), format, args...)
}

// Fail reports a context-free ERROR with no source position.
func (s *Sink) Fail(format string, args ...any) *EvalError {
	return s.fail("", format, args...)
}

// WarnRanged, WarnAt, and Warn mirror the Fail family but never abort
// evaluation and never print a stack trace (spec.md §7).
func (s *Sink) WarnRanged(start, end token.Position, format string, args ...any) {
	s.warn(formatOrigin(start, s.origin), format, args...)
}

func (s *Sink) WarnAt(pos token.Position, format string, args ...any) {
	s.warn(formatOrigin(pos, s.origin), format, args...)
}

func (s *Sink) Warn(format string, args ...any) {
	s.warn("", format, args...)
}

func formatOrigin(pos token.Position, origin string) string {
	return fmt.Sprintf("%s in %s", pos.String(), origin)
}

func (s *Sink) fail(originSuffix string, format string, args ...any) *EvalError {
	msg := fmt.Sprintf(format, args...)
	s.print(s.errColor, "ERROR", originSuffix, msg, true)
	return &EvalError{Message: msg}
}

func (s *Sink) warn(originSuffix string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.print(s.warnColor, "WARNING", originSuffix, msg, false)
}

func (s *Sink) print(c *color.Color, label, originSuffix, msg string, withStack bool) {
	var b strings.Builder
	b.WriteString(c.Sprintf("%s", label))
	b.WriteString(": ")
	b.WriteString(msg)
	if originSuffix != "" {
		b.WriteString(" (")
		b.WriteString(originSuffix)
		b.WriteString(")")
	}
	if withStack && s.stack != nil {
		trace := s.stack.Trace()
		if trace.Depth() > 0 {
			b.WriteString("\n")
			b.WriteString(trace.String())
		}
	}
	fmt.Fprintln(s.w, b.String())
}
