package runtime

// AddRef increments the refcount of a shared (compound) Value and
// returns it unchanged, for use at ownership-transfer points (binding a
// let, storing an array/dict element, building a captures entry).
// Scalars and Function values are no-ops, per spec.md §4.1: function
// sharing is via the arena-owned AST, not refcounting.
//
// Compound values have no user-visible finalizer, so Release just
// recurses into children instead of invoking one.
func AddRef(v Value) Value {
	switch vv := v.(type) {
	case *StringValue:
		vv.RefCount++
	case *ArrayValue:
		vv.RefCount++
	case *DictValue:
		vv.RefCount++
	}
	return v
}

// Release decrements the refcount of a shared Value; at zero it
// transitively releases any children (array elements, dict keys and
// values). Scalars and Function values are no-ops.
func Release(v Value) {
	switch vv := v.(type) {
	case *StringValue:
		vv.RefCount--
	case *ArrayValue:
		vv.RefCount--
		if vv.RefCount <= 0 {
			for _, e := range vv.Elements {
				Release(e)
			}
		}
	case *DictValue:
		vv.RefCount--
		if vv.RefCount <= 0 {
			for _, k := range vv.Keys {
				Release(k)
			}
			for _, val := range vv.Values {
				Release(val)
			}
		}
	}
}

// DeepCopy returns a structurally independent copy of v: scalars and
// Function values are returned as-is (identity), String gets a fresh
// buffer with identical contents, and Array/Dict are copied recursively
// with every child add-ref'd under the new container's ownership.
// Called at every read-through boundary (spec.md §4.1) so no program
// binding ever aliases another's mutable state.
func DeepCopy(v Value) Value {
	switch vv := v.(type) {
	case *StringValue:
		return &StringValue{Value: vv.Value}
	case *ArrayValue:
		elems := make([]Value, len(vv.Elements))
		for i, e := range vv.Elements {
			elems[i] = AddRef(DeepCopy(e))
		}
		return &ArrayValue{Elements: elems}
	case *DictValue:
		keys := make([]Value, len(vv.Keys))
		values := make([]Value, len(vv.Values))
		for i := range vv.Keys {
			keys[i] = AddRef(DeepCopy(vv.Keys[i]))
			values[i] = AddRef(DeepCopy(vv.Values[i]))
		}
		return &DictValue{Keys: keys, Values: values}
	default:
		return v
	}
}
