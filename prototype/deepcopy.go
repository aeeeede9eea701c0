package prototype

import "reflect"

// cloneMetadata deep-copies a metadata map. A nil map stays nil so that a
// clone compares equal to its source.
func cloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue creates a deep copy of an arbitrary value. Maps, slices,
// arrays, structs and pointers are copied recursively into freshly
// allocated storage; scalars are returned as-is.
func cloneValue(value any) any {
	if value == nil {
		return nil
	}

	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Ptr:
		src := reflect.ValueOf(value)
		if src.IsNil() {
			return value
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(cloneReflect(src.Elem().Interface(), t.Elem()))
		return ptr.Interface()

	case reflect.Map:
		src := reflect.ValueOf(value)
		if src.IsNil() {
			return value
		}
		dst := reflect.MakeMapWithSize(t, src.Len())
		iter := src.MapRange()
		for iter.Next() {
			dst.SetMapIndex(iter.Key(), cloneReflect(iter.Value().Interface(), t.Elem()))
		}
		return dst.Interface()

	case reflect.Slice:
		src := reflect.ValueOf(value)
		if src.IsNil() {
			return value
		}
		dst := reflect.MakeSlice(t, src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(cloneReflect(src.Index(i).Interface(), t.Elem()))
		}
		return dst.Interface()

	case reflect.Array:
		src := reflect.ValueOf(value)
		dst := reflect.New(t).Elem()
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(cloneReflect(src.Index(i).Interface(), t.Elem()))
		}
		return dst.Interface()

	case reflect.Struct:
		src := reflect.ValueOf(value)
		for i := 0; i < t.NumField(); i++ {
			if !src.Field(i).CanInterface() {
				// Structs with unexported state (time.Time and friends)
				// can't be rebuilt through reflection without losing it.
				// The interface already holds a by-value copy, so return
				// it unchanged.
				return value
			}
		}
		dst := reflect.New(t).Elem()
		for i := 0; i < t.NumField(); i++ {
			dst.Field(i).Set(cloneReflect(src.Field(i).Interface(), t.Field(i).Type))
		}
		return dst.Interface()

	default:
		// Scalars (and anything else without interior mutability).
		return value
	}
}

// cloneReflect wraps cloneValue for use as a reflect.Value of the wanted
// type. Nil interface values come back as the type's zero value instead of
// an invalid reflect.Value.
func cloneReflect(value any, want reflect.Type) reflect.Value {
	cloned := cloneValue(value)
	if cloned == nil {
		return reflect.Zero(want)
	}
	return reflect.ValueOf(cloned)
}
