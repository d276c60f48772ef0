/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package decl

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// ParsePackage reads a YAML package declaration
func ParsePackage(data []byte) (*PackageDecl, error) {
	pkg := &PackageDecl{}
	if err := yaml.Unmarshal(data, pkg); err != nil {
		return nil, fmt.Errorf("error parsing package declaration: %w", err)
	}
	return pkg, nil
}

// Compile validates the package declaration and registers its types.
// Declared types are compiled in name order, enumerations first. On
// any error no type of the package is registered.
//
// # Errors:
//   - schemas.ErrInvalidError on invalid names and containers,
//   - schemas.ErrAlreadyExistsError on duplicate declarations,
//   - schemas.ErrConflictError on name and union group conflicts,
//   - schemas.ErrResolveError on unresolved type references.
func Compile(reg schemas.Registry, pkg *PackageDecl) ([]schemas.Type, error) {
	return compile(reg, pkg)
}

// CompilePackage parses and compiles a YAML package declaration
func CompilePackage(reg schemas.Registry, data []byte) ([]schemas.Type, error) {
	pkg, err := ParsePackage(data)
	if err != nil {
		return nil, err
	}
	return Compile(reg, pkg)
}
