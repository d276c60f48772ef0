/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import (
	"fmt"
	"sync"
)

// # Implements:
//   - Registry
//
// A single lock guards the check-then-insert sequence, so concurrent
// compilation from several goroutines cannot register the same type
// twice. Compilation itself is expected to happen once per type during
// initialization; finalized entries are immutable and live until the
// owner takes them back with Remove.
type registry struct {
	mx           sync.Mutex
	types        map[QName]Type
	keys         map[any]Type
	typesOrdered []QName
}

func newRegistry() *registry {
	return &registry{
		types: make(map[QName]Type),
		keys:  make(map[any]Type),
	}
}

func (r *registry) Type(name QName) Type {
	r.mx.Lock()
	defer r.mx.Unlock()

	if t, ok := r.types[name]; ok {
		return t
	}
	return nil
}

func (r *registry) Schema(name QName) Schema {
	if s, ok := r.Type(name).(Schema); ok {
		return s
	}
	return nil
}

func (r *registry) Enum(name QName) Enum {
	if e, ok := r.Type(name).(Enum); ok {
		return e
	}
	return nil
}

func (r *registry) TypeByKey(key any) Type {
	r.mx.Lock()
	defer r.mx.Unlock()

	if t, ok := r.keys[key]; ok {
		return t
	}
	return nil
}

func (r *registry) Types(cb func(Type)) {
	r.mx.Lock()
	tt := make([]Type, 0, len(r.typesOrdered))
	for _, n := range r.typesOrdered {
		tt = append(tt, r.types[n])
	}
	r.mx.Unlock()

	for _, t := range tt {
		cb(t)
	}
}

func (r *registry) TypeCount() int {
	r.mx.Lock()
	defer r.mx.Unlock()

	return len(r.typesOrdered)
}

func (r *registry) Add(name QName, key any) SchemaBuilder {
	s := newSchema(r, name, key)
	r.register(s, key, false)
	return s
}

func (r *registry) AddEnum(name QName, key any, values ...EnumValue) Enum {
	e := newEnum(r, name, key, values)
	r.register(e, key, true)
	return e
}

// Registers the type, as a forward declaration or as a finalized entry.
//
// # Panics:
//   - if name is invalid or already used,
//   - if key is already used.
func (r *registry) register(t Type, key any, finalized bool) {
	name := t.QName()
	if ok, err := ValidQName(name); !ok {
		panic(fmt.Errorf("type name «%v» is invalid: %w", name, err))
	}

	r.mx.Lock()
	defer r.mx.Unlock()

	if _, ok := r.types[name]; ok {
		panic(fmt.Errorf("type name «%v» is already used: %w", name, ErrAlreadyExistsError))
	}
	if key != nil {
		if _, ok := r.keys[key]; ok {
			panic(fmt.Errorf("compilation key «%v» is already used: %w", key, ErrAlreadyExistsError))
		}
	}

	r.types[name] = t
	if key != nil {
		r.keys[key] = t
	}
	if finalized {
		r.typesOrdered = append(r.typesOrdered, name)
	}
}

// Promotes a forward declaration to a finalized entry
func (r *registry) finalize(s *schema) {
	r.mx.Lock()
	defer r.mx.Unlock()

	r.typesOrdered = append(r.typesOrdered, s.name)
}

func (r *registry) Remove(name QName) {
	r.mx.Lock()
	defer r.mx.Unlock()

	switch t := r.types[name].(type) {
	case *schema:
		r.removeSchema(t)
	case *enum:
		r.removeEntry(t.name, t.key)
	}
}

// Removes an abandoned schema and all its owned nested types
func (r *registry) removeTree(s *schema) {
	r.mx.Lock()
	defer r.mx.Unlock()

	r.removeSchema(s)
}

// must be called under lock
func (r *registry) removeSchema(s *schema) {
	for _, n := range s.nestedOrdered {
		r.removeSchema(s.nested[n])
	}
	for _, n := range s.enumsOrdered {
		e := s.enums[n]
		r.removeEntry(e.name, e.key)
	}
	r.removeEntry(s.name, s.key)
}

// must be called under lock
func (r *registry) removeEntry(name QName, key any) {
	delete(r.types, name)
	if key != nil {
		delete(r.keys, key)
	}
	for i, n := range r.typesOrdered {
		if n == name {
			r.typesOrdered = append(r.typesOrdered[:i], r.typesOrdered[i+1:]...)
			break
		}
	}
}
