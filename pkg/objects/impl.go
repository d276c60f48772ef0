/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package objects

import (
	"fmt"
	"strings"
	"sync"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// # Implements:
//   - Materializer
type materializer struct {
	reg   schemas.Registry
	mx    sync.Mutex
	types map[schemas.QName]*objType
}

func (m *materializer) Materialize(name schemas.QName) (Type, error) {
	m.mx.Lock()
	defer m.mx.Unlock()

	t, err := m.materialize(name)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Memoizes before descending into nested schemas, so self-referencing
// schema graphs materialize in finite steps
func (m *materializer) materialize(name schemas.QName) (*objType, error) {
	if t, ok := m.types[name]; ok {
		return t, nil
	}

	tp := m.reg.Type(name)
	if tp == nil {
		return nil, schemas.ErrTypeNotFound(name)
	}

	t := &objType{m: m, name: name, nested: make(map[string]Type)}
	m.types[name] = t

	switch tp := tp.(type) {
	case schemas.Schema:
		t.schema = tp
		tp.Fields(func(f schemas.Field) { t.fields = append(t.fields, f) })
		var err error
		tp.NestedSchemas(func(n schemas.Schema) {
			if err == nil {
				err = m.addNested(t, n.QName())
			}
		})
		tp.NestedEnums(func(n schemas.Enum) {
			if err == nil {
				err = m.addNested(t, n.QName())
			}
		})
		if err != nil {
			return nil, err
		}
	case schemas.Enum:
		t.enum = tp
	}

	return t, nil
}

func (m *materializer) addNested(parent *objType, name schemas.QName) error {
	child, err := m.materialize(name)
	if err != nil {
		return err
	}
	parent.nested[localName(name)] = child
	return nil
}

// Returns the last segment of a nested type qualified name
func localName(name schemas.QName) string {
	e := name.Entity()
	if i := strings.LastIndex(e, schemas.QNameQualifierChar); i >= 0 {
		return e[i+1:]
	}
	return e
}

// # Implements:
//   - Type
type objType struct {
	m      *materializer
	name   schemas.QName
	schema schemas.Schema
	enum   schemas.Enum
	fields []schemas.Field
	nested map[string]Type
}

func (t *objType) QName() schemas.QName { return t.name }

func (t *objType) Schema() schemas.Schema { return t.schema }

func (t *objType) Enum() schemas.Enum { return t.enum }

func (t *objType) Nested(name string) Type {
	if n, ok := t.nested[name]; ok {
		return n
	}
	return nil
}

func (t *objType) FieldType(field string) (Type, error) {
	if t.schema == nil {
		return nil, schemas.ErrInvalid("%v is not a record type", t)
	}
	f := t.schema.Field(field)
	if f == nil {
		return nil, fmt.Errorf("%v: %w", t, schemas.ErrFieldNotFound(field))
	}
	if f.Ref() == schemas.NullQName {
		return nil, schemas.ErrInvalid("%v field «%s» is scalar", t, field)
	}

	t.m.mx.Lock()
	defer t.m.mx.Unlock()
	return t.m.materialize(f.Ref())
}

// Two-phase construction. Phase one partitions raw arguments into
// field assignments and validates union group exclusivity; phase two
// applies default values, checks required fields and value shapes.
func (t *objType) New(args []any, kwargs map[string]any) (Object, error) {
	if t.schema == nil {
		return nil, schemas.ErrValidation("%v is not a record type", t)
	}
	if len(args) > len(t.fields) {
		return nil, schemas.ErrOutOfBounds("%v got %d positional arguments, but has %d fields", t, len(args), len(t.fields))
	}

	o := newObject(t)
	fromArgs := make(map[string]string) // union group -> member assigned positionally

	for i, v := range args {
		if v == nil {
			continue
		}
		f := t.fields[i]
		if g := f.UnionGroup(); g != schemas.NullName {
			if prev, ok := o.union[g]; ok {
				return nil, schemas.ErrConflict("%v union group «%s» got positional arguments for members «%s» and «%s»", t, g, prev, f.Name())
			}
			o.union[g] = f.Name()
			fromArgs[g] = f.Name()
		}
		o.values[f.Name()] = v
	}

	for n, v := range kwargs {
		f := t.schema.Field(n)
		if f == nil {
			return nil, fmt.Errorf("%v: %w", t, schemas.ErrFieldNotFound(n))
		}
		if v == nil {
			continue
		}
		if g := f.UnionGroup(); g != schemas.NullName {
			if prev, ok := o.union[g]; ok {
				if p, positional := fromArgs[g]; positional {
					return nil, schemas.ErrConflict("%v union group «%s» got conflicting positional «%s» and keyword «%s» arguments", t, g, p, n)
				}
				return nil, schemas.ErrConflict("%v union group «%s» got multiple keyword arguments: «%s» and «%s»", t, g, prev, n)
			}
			o.union[g] = n
		} else if _, ok := o.values[n]; ok {
			return nil, schemas.ErrConflict("%v field «%s» got multiple values", t, n)
		}
		o.values[n] = v
	}

	for _, f := range t.fields {
		v, ok := o.values[f.Name()]
		if ok {
			if err := t.checkValue(f, v); err != nil {
				return nil, err
			}
			continue
		}
		if d, ok := f.Default(); ok {
			o.values[f.Name()] = d
			continue
		}
		if f.UnionGroup() != schemas.NullName {
			// absence of a union member is expressed by the group
			continue
		}
		if f.Required() {
			return nil, schemas.ErrValidation("%v required field «%s» is not assigned", t, f.Name())
		}
	}

	return o, nil
}

func (t *objType) String() string {
	if t.enum != nil {
		return fmt.Sprintf("enum «%v»", t.name)
	}
	return fmt.Sprintf("record «%v»", t.name)
}
