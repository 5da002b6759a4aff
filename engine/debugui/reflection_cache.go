package debugui

import (
	"reflect"
)

// fieldInfo describes one exported struct field of a property type.
type fieldInfo struct {
	name    string
	index   int
	pointer bool
}

// value resolves the field on parent, following one pointer hop. The second
// return is false when the field is a nil pointer.
func (f fieldInfo) value(parent reflect.Value) (reflect.Value, bool) {
	v := parent.Field(f.index)
	if f.pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

// fieldCache memoizes exported-field layouts per property type so the
// inspector does not re-walk struct types on every frame. The overlay only
// runs on the game goroutine, so no locking is needed.
type fieldCache struct {
	byType map[reflect.Type][]fieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{byType: make(map[reflect.Type][]fieldInfo)}
}

func (c *fieldCache) fields(t reflect.Type) []fieldInfo {
	if cached, ok := c.byType[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{
				name:    field.Name,
				index:   i,
				pointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	c.byType[t] = fields
	return fields
}

var propertyFields = newFieldCache()
