package optics

import (
	"fmt"
	"reflect"

	"github.com/auth-platform/optics/hook"
)

// Field returns a Lens focused on the named exported field of a struct
// state. The state may be a struct or a pointer to one; rebuilding
// copies the struct (re-wrapping the pointer) while sharing every
// other field with the original. A missing or unexported field fails
// with FOCUS_ERROR at application time.
func Field(name string) Optic {
	run := func(state any) ([]any, rebuildFunc, error) {
		v := reflect.ValueOf(state)
		isPtr := v.Kind() == reflect.Pointer
		if isPtr {
			if v.IsNil() {
				return nil, nil, focusErrorf("field %q: nil %T", name, state)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, nil, focusErrorf("field %q: %T is not a struct", name, state)
		}
		sf, ok := v.Type().FieldByName(name)
		if !ok {
			return nil, nil, focusErrorf("field %q: %T has no such field", name, state)
		}
		if !sf.IsExported() {
			return nil, nil, focusErrorf("field %q of %T is not exported", name, state)
		}
		focus := v.FieldByIndex(sf.Index)

		rebuild := func(vs []any) (any, error) {
			if len(vs) != 1 {
				return nil, focusErrorf("field %q rebuild wants 1 value, got %d", name, len(vs))
			}
			rv, err := hook.Coerce(vs[0], sf.Type)
			if err != nil {
				return nil, focusErrorf("field %q: %v", name, err)
			}
			out := reflect.New(v.Type()).Elem()
			out.Set(v)
			out.FieldByIndex(sf.Index).Set(rv)
			if isPtr {
				p := reflect.New(v.Type())
				p.Elem().Set(out)
				return p.Interface(), nil
			}
			return out.Interface(), nil
		}
		return []any{focus.Interface()}, rebuild, nil
	}
	return elementary(fmt.Sprintf("field(%s)", name), Lens, run)
}
