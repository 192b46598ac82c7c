package builtins_test

import (
	"bytes"
	"testing"

	"github.com/glintlang/glint/internal/builtins"
	"github.com/glintlang/glint/internal/errors"
	"github.com/glintlang/glint/internal/runner"
	"github.com/stretchr/testify/require"
)

func TestRegisterAllCoversExpectedNames(t *testing.T) {
	r := builtins.NewRegistry()
	builtins.RegisterAll(r)

	for _, name := range []string{"puts", "map", "assert", "len", "type"} {
		info, ok := r.Get(name)
		require.True(t, ok, "builtin %q should be registered", name)
		require.Equal(t, name, info.Name)
	}
	require.Len(t, r.All(), 5)
}

func TestValueSynthesizesUnlockedCaptureLessFunction(t *testing.T) {
	r := builtins.NewRegistry()
	builtins.RegisterAll(r)

	info, ok := r.Get("puts")
	require.True(t, ok)

	fv := info.Value()
	require.False(t, fv.Locked)
	require.Empty(t, fv.Captures)
	require.Len(t, fv.Node.Parameters, 1)
	require.Equal(t, "value", fv.Node.Parameters[0].Value)
}

func TestLenOnStringArrayDict(t *testing.T) {
	var out bytes.Buffer
	sink := errors.NewSink(&bytes.Buffer{}, "<test>")
	rn := runner.New(&out, sink)

	require.Nil(t, rn.Eval(`assert(len("abc") == 3);`))
	require.Nil(t, rn.Eval(`assert(len([1, 2]) == 2);`))
	require.Nil(t, rn.Eval(`assert(len({"a": 1}) == 1);`))
}

func TestTypeReturnsRuntimeTypeName(t *testing.T) {
	var out bytes.Buffer
	sink := errors.NewSink(&bytes.Buffer{}, "<test>")
	rn := runner.New(&out, sink)

	require.Nil(t, rn.Eval(`assert(type(1) == "int");`))
	require.Nil(t, rn.Eval(`assert(type("s") == "string");`))
	require.Nil(t, rn.Eval(`assert(type([1]) == "array");`))
}

func TestMapCallsFuncOnceForEachDictEntry(t *testing.T) {
	var out bytes.Buffer
	sink := errors.NewSink(&bytes.Buffer{}, "<test>")
	rn := runner.New(&out, sink)

	err := rn.Eval(`
		let d = {"a": 1, "b": 2};
		let count = 0;
		map(d, fn(k, v){ count = count + v; });
		assert(count == 3);
	`)
	require.Nil(t, err)
}

func TestMapOnNonContainerFails(t *testing.T) {
	var out bytes.Buffer
	var errOut bytes.Buffer
	sink := errors.NewSink(&errOut, "<test>")
	rn := runner.New(&out, sink)

	err := rn.Eval(`map(1, fn(i){ i; });`)
	require.NotNil(t, err)
}

func TestAssertOnNonBoolFails(t *testing.T) {
	var out bytes.Buffer
	var errOut bytes.Buffer
	sink := errors.NewSink(&errOut, "<test>")
	rn := runner.New(&out, sink)

	err := rn.Eval(`assert(1);`)
	require.NotNil(t, err)
}
