/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import "fmt"

// # Implements:
//   - Schema
//   - SchemaBuilder
type schema struct {
	reg           *registry
	name          QName
	key           any
	fields        map[string]*field
	fieldsOrdered []string
	nested        map[string]*schema
	nestedOrdered []string
	enums         map[string]*enum
	enumsOrdered  []string
	unions        map[string]*unionGroup
	unionsOrdered []string
	built         bool
}

func newSchema(reg *registry, name QName, key any) *schema {
	return &schema{
		reg:    reg,
		name:   name,
		key:    key,
		fields: make(map[string]*field),
		nested: make(map[string]*schema),
		enums:  make(map[string]*enum),
		unions: make(map[string]*unionGroup),
	}
}

func (s *schema) Registry() Registry { return s.reg }

func (s *schema) QName() QName { return s.name }

func (s *schema) Kind() TypeKind { return TypeKind_Record }

func (s *schema) Field(name string) Field {
	if f, ok := s.fields[name]; ok {
		return f
	}
	return nil
}

func (s *schema) Fields(cb func(Field)) {
	for _, n := range s.fieldsOrdered {
		cb(s.fields[n])
	}
}

func (s *schema) FieldCount() int { return len(s.fieldsOrdered) }

func (s *schema) Nested(name string) Schema {
	if n, ok := s.nested[name]; ok {
		return n
	}
	return nil
}

func (s *schema) NestedSchemas(cb func(Schema)) {
	for _, n := range s.nestedOrdered {
		cb(s.nested[n])
	}
}

func (s *schema) NestedEnum(name string) Enum {
	if e, ok := s.enums[name]; ok {
		return e
	}
	return nil
}

func (s *schema) NestedEnums(cb func(Enum)) {
	for _, n := range s.enumsOrdered {
		cb(s.enums[n])
	}
}

func (s *schema) UnionGroup(name string) UnionGroup {
	if u, ok := s.unions[name]; ok {
		return u
	}
	return nil
}

func (s *schema) UnionGroups(cb func(UnionGroup)) {
	for _, n := range s.unionsOrdered {
		cb(s.unions[n])
	}
}

func (s *schema) UnionOf(field string) UnionGroup {
	if f, ok := s.fields[field]; ok && (f.union != NullName) {
		return s.unions[f.union]
	}
	return nil
}

func (s *schema) AddField(name string, kind DataKind, required bool) SchemaBuilder {
	if !kind.IsScalar() {
		panic(fmt.Errorf("schema «%v» field «%s» kind «%v» is not scalar: %w", s.name, name, kind.TrimString(), ErrInvalidError))
	}
	s.appendField(newField(name, kind, NullQName, required))
	return s
}

func (s *schema) AddRefField(name string, kind DataKind, ref QName, required bool) SchemaBuilder {
	if !kind.IsRef() {
		panic(fmt.Errorf("schema «%v» field «%s» kind «%v» is not a type reference: %w", s.name, name, kind.TrimString(), ErrInvalidError))
	}
	if ref == NullQName {
		panic(fmt.Errorf("schema «%v» field «%s» referenced type name is empty: %w", s.name, name, ErrMissedError))
	}
	s.appendField(newField(name, kind, ref, required))
	return s
}

func (s *schema) SetFieldContainer(name string, cont ContainerKind) SchemaBuilder {
	fld := s.mustField(name)
	if cont >= ContainerKind_count {
		panic(fmt.Errorf("schema «%v» field «%s» container kind is unknown: %w", s.name, name, ErrInvalidError))
	}
	fld.container = cont
	return s
}

func (s *schema) SetFieldOptional(name string) SchemaBuilder {
	s.mustField(name).required = false
	return s
}

func (s *schema) SetFieldDefault(name string, value any) SchemaBuilder {
	s.mustField(name).setDefault(value)
	return s
}

func (s *schema) AddUnion(name string, members ...string) SchemaBuilder {
	s.panicIfBuilt()
	if ok, err := ValidIdent(name); !ok {
		panic(fmt.Errorf("schema «%v» union group name is invalid: %w", s.name, err))
	}
	if _, ok := s.unions[name]; ok {
		panic(fmt.Errorf("schema «%v» union group «%s» is redeclared: %w", s.name, name, ErrAlreadyExistsError))
	}
	s.unions[name] = newUnionGroup(name, members)
	s.unionsOrdered = append(s.unionsOrdered, name)
	return s
}

func (s *schema) AddNested(name string, key any) SchemaBuilder {
	s.panicIfBuilt()
	s.checkNestedName(name)
	child := newSchema(s.reg, s.nestedQName(name), key)
	s.reg.register(child, key, false)
	s.nested[name] = child
	s.nestedOrdered = append(s.nestedOrdered, name)
	return child
}

func (s *schema) AddNestedEnum(name string, key any, values ...EnumValue) Enum {
	s.panicIfBuilt()
	s.checkNestedName(name)
	child := newEnum(s.reg, s.nestedQName(name), key, values)
	s.reg.register(child, key, true)
	s.enums[name] = child
	s.enumsOrdered = append(s.enumsOrdered, name)
	return child
}

func (s *schema) Build() (Schema, error) {
	if s.built {
		return s, nil
	}
	if err := s.validateUnions(); err != nil {
		s.Abandon()
		return nil, err
	}
	s.built = true
	s.reg.finalize(s)
	return s, nil
}

func (s *schema) Abandon() {
	s.panicIfBuilt()
	s.reg.removeTree(s)
}

func (s *schema) String() string {
	return fmt.Sprintf("record «%v»", s.QName())
}

// Union groups are declared up front and checked late: members must be
// declared fields, each group needs at least two of them, no field may
// sit in two groups and no member may carry its own default or optional
// marker (union absence is expressed by the group, not by the field).
func (s *schema) validateUnions() error {
	for _, n := range s.unionsOrdered {
		u := s.unions[n]
		if u.MemberCount() < 2 {
			return ErrConflict("union group «%s» in %v must have at least two members", n, s)
		}
		for _, m := range u.members {
			fld, ok := s.fields[m]
			if !ok {
				return ErrNotFound("union group «%s» member field «%s» in %v", n, m, s)
			}
			if fld.union != NullName {
				return ErrConflict("field «%s» in %v is a member of union groups «%s» and «%s»", m, s, fld.union, n)
			}
			if fld.hasDefault {
				return ErrConflict("union group «%s» member field «%s» in %v must not have a default value", n, m, s)
			}
			if !fld.required {
				return ErrConflict("union group «%s» member field «%s» in %v must not be marked optional", n, m, s)
			}
			fld.union = n
		}
	}
	return nil
}

func (s *schema) appendField(fld *field) {
	s.panicIfBuilt()
	if ok, err := ValidIdent(fld.name); !ok {
		panic(fmt.Errorf("schema «%v» field name is invalid: %w", s.name, err))
	}
	if _, ok := s.fields[fld.name]; ok {
		panic(fmt.Errorf("schema «%v» field «%s» is redeclared: %w", s.name, fld.name, ErrAlreadyExistsError))
	}
	s.fields[fld.name] = fld
	s.fieldsOrdered = append(s.fieldsOrdered, fld.name)
}

func (s *schema) checkNestedName(name string) {
	if ok, err := ValidIdent(name); !ok {
		panic(fmt.Errorf("schema «%v» nested type name is invalid: %w", s.name, err))
	}
	if _, ok := s.nested[name]; ok {
		panic(fmt.Errorf("schema «%v» nested type «%s» is redeclared: %w", s.name, name, ErrAlreadyExistsError))
	}
	if _, ok := s.enums[name]; ok {
		panic(fmt.Errorf("schema «%v» nested type «%s» is redeclared: %w", s.name, name, ErrAlreadyExistsError))
	}
}

func (s *schema) mustField(name string) *field {
	s.panicIfBuilt()
	if f, ok := s.fields[name]; ok {
		return f
	}
	panic(fmt.Errorf("%v: %w", s, ErrFieldNotFound(name)))
}

func (s *schema) nestedQName(name string) QName {
	return NewQName(s.name.Pkg(), s.name.Entity()+QNameQualifierChar+name)
}

func (s *schema) panicIfBuilt() {
	if s.built {
		panic(fmt.Errorf("%v is already built: %w", s, ErrInvalidError))
	}
}
