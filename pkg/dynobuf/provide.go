/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dynobuf

import (
	"github.com/untillpro/dataobjects/pkg/objects"
	"github.com/untillpro/dataobjects/pkg/schemas"
)

// New returns a new dynobuffer schemes map
func New() *Schemes {
	return newSchemes()
}

// NewCodec returns a codec with schemes prepared for all compiled
// record schemas of the registry
func NewCodec(reg schemas.Registry, mat objects.Materializer) *Codec {
	return newCodec(reg, mat)
}
