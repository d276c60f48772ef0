/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import "fmt"

// # Implements:
//   - Enum
type enum struct {
	reg    *registry
	name   QName
	key    any
	values []EnumValue
	index  map[string]int32
}

func newEnum(reg *registry, name QName, key any, values []EnumValue) *enum {
	e := &enum{
		reg:    reg,
		name:   name,
		key:    key,
		values: make([]EnumValue, 0, len(values)),
		index:  make(map[string]int32),
	}
	used := make(map[int32]string)
	for _, v := range values {
		if ok, err := ValidIdent(v.Name); !ok {
			panic(fmt.Errorf("enum «%v» value name is invalid: %w", name, err))
		}
		if _, ok := e.index[v.Name]; ok {
			panic(fmt.Errorf("enum «%v» value «%s» is redeclared: %w", name, v.Name, ErrAlreadyExistsError))
		}
		if label, ok := used[v.Value]; ok {
			panic(fmt.Errorf("enum «%v» values «%s» and «%s» share number %d: %w", name, label, v.Name, v.Value, ErrAlreadyExistsError))
		}
		e.values = append(e.values, v)
		e.index[v.Name] = v.Value
		used[v.Value] = v.Name
	}
	if len(e.values) == 0 {
		panic(fmt.Errorf("enum «%v» has no values: %w", name, ErrMissedError))
	}
	return e
}

func (e *enum) Registry() Registry { return e.reg }

func (e *enum) QName() QName { return e.name }

func (e *enum) Kind() TypeKind { return TypeKind_Enum }

func (e *enum) Value(name string) (int32, bool) {
	v, ok := e.index[name]
	return v, ok
}

func (e *enum) Values(cb func(EnumValue)) {
	for _, v := range e.values {
		cb(v)
	}
}

func (e *enum) ValueCount() int { return len(e.values) }

func (e *enum) String() string {
	return fmt.Sprintf("enum «%v»", e.QName())
}

// Validates enumeration values without constructing anything. Callers
// that take values from user declarations use it to fail with an error
// instead of a panic.
func ValidEnumValues(values []EnumValue) (bool, error) {
	if len(values) == 0 {
		return false, ErrMissed("enum values")
	}
	labels := make(map[string]bool)
	numbers := make(map[int32]string)
	for _, v := range values {
		if ok, err := ValidIdent(v.Name); !ok {
			return false, err
		}
		if labels[v.Name] {
			return false, ErrAlreadyExists("enum value «%s»", v.Name)
		}
		if label, ok := numbers[v.Value]; ok {
			return false, ErrAlreadyExists("enum number %d (values «%s» and «%s»)", v.Value, label, v.Name)
		}
		labels[v.Name] = true
		numbers[v.Value] = v.Name
	}
	return true, nil
}
