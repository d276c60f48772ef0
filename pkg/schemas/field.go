/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

// # Implements:
//   - Field
type field struct {
	name       string
	kind       DataKind
	ref        QName
	container  ContainerKind
	required   bool
	defValue   any
	hasDefault bool
	union      string
}

func newField(name string, kind DataKind, ref QName, required bool) *field {
	return &field{
		name:     name,
		kind:     kind,
		ref:      ref,
		required: required,
	}
}

func (fld *field) Name() string { return fld.name }

func (fld *field) DataKind() DataKind { return fld.kind }

func (fld *field) Ref() QName { return fld.ref }

func (fld *field) Container() ContainerKind { return fld.container }

func (fld *field) Required() bool { return fld.required }

func (fld *field) Default() (value any, ok bool) {
	return fld.defValue, fld.hasDefault
}

func (fld *field) UnionGroup() string { return fld.union }

func (fld *field) IsFixedWidth() bool {
	return fld.DataKind().IsFixed()
}

func (fld *field) setDefault(value any) {
	fld.defValue = value
	fld.hasDefault = true
	fld.required = false
}
