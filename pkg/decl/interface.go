/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

// Package decl compiles textual (YAML) package declarations into
// registered schemas. Declared types may reference each other in any
// order, forward references are resolved through the registry.
package decl

// Package declaration: qualifying package name plus declared record
// and enumeration types
type PackageDecl struct {
	Package string                     `yaml:"package"`
	Types   map[string]TypeDecl        `yaml:"types,omitempty"`
	Enums   map[string][]EnumValueDecl `yaml:"enums,omitempty"`
}

type TypeDecl struct {
	Fields []FieldDecl `yaml:"fields"`
	Unions []UnionDecl `yaml:"unions,omitempty"`
}

type FieldDecl struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Container string `yaml:"container,omitempty"` // "", "list" or "map"
	Required  bool   `yaml:"required,omitempty"`
	Optional  bool   `yaml:"optional,omitempty"`
	Default   any    `yaml:"default,omitempty"`
}

type UnionDecl struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

type EnumValueDecl struct {
	Name  string `yaml:"name"`
	Value int32  `yaml:"value"`
}
