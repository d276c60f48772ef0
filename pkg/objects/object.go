/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package objects

import (
	"reflect"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// # Implements:
//   - Object
type object struct {
	typ    *objType
	values map[string]any
	union  map[string]string
}

func newObject(t *objType) *object {
	return &object{
		typ:    t,
		values: make(map[string]any),
		union:  make(map[string]string),
	}
}

func (o *object) Type() Type { return o.typ }

func (o *object) Value(field string) (any, bool) {
	v, ok := o.values[field]
	return v, ok
}

func (o *object) Fields(cb func(f schemas.Field, value any)) {
	for _, f := range o.typ.fields {
		if v, ok := o.values[f.Name()]; ok {
			cb(f, v)
		}
	}
}

func (o *object) WhichUnion(group string) (member string, ok bool) {
	member, ok = o.union[group]
	return member, ok
}

// Checks the value fits the field data kind and container. Structural
// shape only, no deep validation.
func (t *objType) checkValue(f schemas.Field, value any) error {
	switch f.Container() {
	case schemas.ContainerKind_List:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice {
			return schemas.ErrInvalid("%v list field «%s» got non-sequence value of type «%T»", t, f.Name(), value)
		}
		for i := 0; i < rv.Len(); i++ {
			if err := t.checkScalar(f, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	case schemas.ContainerKind_Map:
		rv := reflect.ValueOf(value)
		if (rv.Kind() != reflect.Map) || (rv.Type().Key().Kind() != reflect.String) {
			return schemas.ErrInvalid("%v map field «%s» got non-mapping value of type «%T»", t, f.Name(), value)
		}
		it := rv.MapRange()
		for it.Next() {
			if err := t.checkScalar(f, it.Value().Interface()); err != nil {
				return err
			}
		}
	default:
		return t.checkScalar(f, value)
	}
	return nil
}

func (t *objType) checkScalar(f schemas.Field, value any) error {
	ok := false
	switch f.DataKind() {
	case schemas.DataKind_int32:
		_, ok = value.(int32)
	case schemas.DataKind_int64:
		switch value.(type) {
		case int64, int:
			ok = true
		}
	case schemas.DataKind_uint32:
		_, ok = value.(uint32)
	case schemas.DataKind_uint64:
		switch value.(type) {
		case uint64, uint:
			ok = true
		}
	case schemas.DataKind_float32:
		_, ok = value.(float32)
	case schemas.DataKind_float64:
		_, ok = value.(float64)
	case schemas.DataKind_bytes:
		_, ok = value.([]byte)
	case schemas.DataKind_string:
		_, ok = value.(string)
	case schemas.DataKind_bool:
		_, ok = value.(bool)
	case schemas.DataKind_JSON:
		rv := reflect.ValueOf(value)
		ok = (rv.Kind() == reflect.Map) && (rv.Type().Key().Kind() == reflect.String)
	case schemas.DataKind_Record:
		if obj, is := value.(Object); is {
			ok = obj.Type().QName() == f.Ref()
		}
	case schemas.DataKind_Enum:
		ok = t.checkEnumValue(f, value)
	}
	if !ok {
		return schemas.ErrInvalid("%v field «%s» of kind «%s» got value of type «%T»", t, f.Name(), f.DataKind().TrimString(), value)
	}
	return nil
}

// Enumeration fields accept the numeric value or the label
func (t *objType) checkEnumValue(f schemas.Field, value any) bool {
	e := t.schema.Registry().Enum(f.Ref())
	if e == nil {
		return false
	}
	switch v := value.(type) {
	case int32:
		found := false
		e.Values(func(ev schemas.EnumValue) { found = found || (ev.Value == v) })
		return found
	case string:
		_, ok := e.Value(v)
		return ok
	}
	return false
}
