// Package runtime holds the evaluator's runtime data: the tagged-union
// Value model (spec.md §3.1), its refcount/deep-copy operations (§4.1),
// the scope stack and name resolution (§3.2, §4.3, §4.4), and the call
// stack (§3.3).
//
// Value variants are pointer-receiver structs implementing a shared
// Value interface: six variants plus the internal Void placeholder.
package runtime

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strconv"
	"strings"

	"github.com/glintlang/glint/internal/ast"
)

// Kind discriminates the Value variants.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindArray
	KindDict
	KindFunction
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	case KindFunction:
		return "function"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Value is the common interface implemented by every runtime value.
type Value interface {
	Kind() Kind
	TypeName() string
	Equal(other Value) bool
	Hash() uint64
}

// IntegerValue is an inline 64-bit signed integer.
type IntegerValue struct{ Value int64 }

func (v *IntegerValue) Kind() Kind        { return KindInt }
func (v *IntegerValue) TypeName() string  { return "int" }
func (v *IntegerValue) Hash() uint64      { return uint64(v.Value) }
func (v *IntegerValue) Equal(o Value) bool {
	other, ok := o.(*IntegerValue)
	return ok && other.Value == v.Value
}

// BooleanValue is an inline boolean.
type BooleanValue struct{ Value bool }

func (v *BooleanValue) Kind() Kind       { return KindBool }
func (v *BooleanValue) TypeName() string { return "bool" }
func (v *BooleanValue) Hash() uint64 {
	if v.Value {
		return 1
	}
	return 0
}
func (v *BooleanValue) Equal(o Value) bool {
	other, ok := o.(*BooleanValue)
	return ok && other.Value == v.Value
}

// StringValue is a shared, refcounted, immutable byte sequence.
type StringValue struct {
	Value    string
	RefCount int
}

func (v *StringValue) Kind() Kind       { return KindString }
func (v *StringValue) TypeName() string { return "string" }
func (v *StringValue) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(v.Value))
	return h.Sum64()
}
func (v *StringValue) Equal(o Value) bool {
	other, ok := o.(*StringValue)
	return ok && other.Value == v.Value
}

// ArrayValue is a shared, refcounted ordered sequence of Values.
type ArrayValue struct {
	Elements []Value
	RefCount int
}

func (v *ArrayValue) Kind() Kind       { return KindArray }
func (v *ArrayValue) TypeName() string { return "array" }
func (v *ArrayValue) Hash() uint64 {
	h := uint64(len(v.Elements))
	for _, e := range v.Elements {
		h = h*31 + e.Hash()
	}
	return h
}
func (v *ArrayValue) Equal(o Value) bool {
	other, ok := o.(*ArrayValue)
	if !ok || len(other.Elements) != len(v.Elements) {
		return false
	}
	for i, e := range v.Elements {
		if !e.Equal(other.Elements[i]) {
			return false
		}
	}
	return true
}

// DictValue is a shared, refcounted mapping; parallel Keys/Values slices
// preserve insertion order (spec.md doesn't require ordered iteration,
// but `map` needs a deterministic one, and an append-only pair of
// slices is the simplest thing that gives it to us without an auxiliary
// hash index for Glint's expected dictionary sizes).
type DictValue struct {
	Keys     []Value
	Values   []Value
	RefCount int
}

func (v *DictValue) Kind() Kind       { return KindDict }
func (v *DictValue) TypeName() string { return "dict" }

// IndexOfKey returns the position of a key equal (per Equal) to key, or
// -1 if absent.
func (v *DictValue) IndexOfKey(key Value) int {
	for i, k := range v.Keys {
		if k.Equal(key) {
			return i
		}
	}
	return -1
}

func (v *DictValue) Hash() uint64 {
	h := uint64(len(v.Keys))
	for i := range v.Keys {
		h += v.Keys[i].Hash() ^ v.Values[i].Hash()
	}
	return h
}

func (v *DictValue) Equal(o Value) bool {
	other, ok := o.(*DictValue)
	if !ok || len(other.Keys) != len(v.Keys) {
		return false
	}
	for i, k := range v.Keys {
		j := other.IndexOfKey(k)
		if j == -1 || !v.Values[i].Equal(other.Values[j]) {
			return false
		}
	}
	return true
}

// FunctionValue is shared by AST identity: it wraps the FunctionLiteral
// node plus the captures snapshot and capture-lock flag allocated the
// first time the literal is evaluated (spec.md §3.1, §4.5).
type FunctionValue struct {
	Node       *ast.FunctionLiteral
	Captures   map[string]Value
	Locked     bool
	CalleeName string // display name at the call site; empty at definition
}

func (v *FunctionValue) Kind() Kind       { return KindFunction }
func (v *FunctionValue) TypeName() string { return "function" }
func (v *FunctionValue) Hash() uint64 {
	return uint64(reflect.ValueOf(v.Node).Pointer())
}
func (v *FunctionValue) Equal(o Value) bool {
	other, ok := o.(*FunctionValue)
	return ok && other.Node == v.Node
}

// VoidValue is the internal placeholder produced when a call site
// allows a void result (spec.md §4.7); it is never constructed by user
// source literals and is not one of the six Value variants in §3.1.
type VoidValue struct{}

func (v *VoidValue) Kind() Kind       { return KindVoid }
func (v *VoidValue) TypeName() string { return "void" }
func (v *VoidValue) Hash() uint64     { return 0 }
func (v *VoidValue) Equal(o Value) bool {
	_, ok := o.(*VoidValue)
	return ok
}

// Void is the single shared Void instance.
var Void = &VoidValue{}

// NewFunctionValue constructs an unlocked, capture-less Function value
// for node, per spec.md §4.5 step 1.
func NewFunctionValue(node *ast.FunctionLiteral, calleeName string) *FunctionValue {
	return &FunctionValue{Node: node, Captures: make(map[string]Value), CalleeName: calleeName}
}

// RenderTopLevel is the "value-string" render form used by puts and by
// string concatenation (spec.md §4.1): strings render unquoted here,
// but quoted when nested inside an aggregate.
func RenderTopLevel(v Value) string {
	if s, ok := v.(*StringValue); ok {
		return s.Value
	}
	return renderNested(v)
}

func renderNested(v Value) string {
	switch vv := v.(type) {
	case *IntegerValue:
		return strconv.FormatInt(vv.Value, 10)
	case *BooleanValue:
		return strconv.FormatBool(vv.Value)
	case *StringValue:
		return "\"" + vv.Value + "\""
	case *ArrayValue:
		parts := make([]string, len(vv.Elements))
		for i, e := range vv.Elements {
			parts[i] = renderNested(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *DictValue:
		parts := make([]string, len(vv.Keys))
		for i := range vv.Keys {
			parts[i] = renderNested(vv.Keys[i]) + ": " + renderNested(vv.Values[i])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *FunctionValue:
		params := make([]string, len(vv.Node.Parameters))
		for i, p := range vv.Node.Parameters {
			params[i] = p.Value
		}
		return fmt.Sprintf("function %s(%s)", vv.CalleeName, strings.Join(params, ", "))
	case *VoidValue:
		return "void"
	default:
		return "?"
	}
}
