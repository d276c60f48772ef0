/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package objects

import "github.com/untillpro/dataobjects/pkg/schemas"

// New returns a materializer over the compiled types of the registry
func New(reg schemas.Registry) Materializer {
	return &materializer{
		reg:   reg,
		types: make(map[schemas.QName]*objType),
	}
}
