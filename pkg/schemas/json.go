/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import (
	json "github.com/goccy/go-json"
)

type fieldJSON struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Ref       string `json:"ref,omitempty"`
	Container string `json:"container,omitempty"`
	Required  bool   `json:"required"`
	Default   any    `json:"default,omitempty"`
	Union     string `json:"union,omitempty"`
}

type unionJSON struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type enumValueJSON struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

type typeJSON struct {
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Fields []fieldJSON     `json:"fields,omitempty"`
	Unions []unionJSON     `json:"unions,omitempty"`
	Nested []typeJSON      `json:"nested,omitempty"`
	Values []enumValueJSON `json:"values,omitempty"`
}

// ToJSON renders the compiled type, with all owned nested types, as an
// indented JSON document
func ToJSON(t Type) ([]byte, error) {
	return json.MarshalIndent(makeTypeJSON(t), "", "  ")
}

func makeTypeJSON(t Type) typeJSON {
	res := typeJSON{
		Name: t.QName().String(),
		Kind: t.Kind().TrimString(),
	}

	switch t := t.(type) {
	case Schema:
		t.Fields(func(f Field) {
			fj := fieldJSON{
				Name:     f.Name(),
				Kind:     f.DataKind().TrimString(),
				Required: f.Required(),
				Union:    f.UnionGroup(),
			}
			if ref := f.Ref(); ref != NullQName {
				fj.Ref = ref.String()
			}
			if c := f.Container(); c != ContainerKind_None {
				fj.Container = c.TrimString()
			}
			if def, ok := f.Default(); ok {
				fj.Default = def
			}
			res.Fields = append(res.Fields, fj)
		})
		t.UnionGroups(func(u UnionGroup) {
			res.Unions = append(res.Unions, unionJSON{Name: u.Name(), Members: u.Members()})
		})
		t.NestedSchemas(func(n Schema) {
			res.Nested = append(res.Nested, makeTypeJSON(n))
		})
		t.NestedEnums(func(e Enum) {
			res.Nested = append(res.Nested, makeTypeJSON(e))
		})
	case Enum:
		t.Values(func(v EnumValue) {
			res.Values = append(res.Values, enumValueJSON{Name: v.Name, Value: v.Value})
		})
	}

	return res
}
