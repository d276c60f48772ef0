/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dynobuf

import (
	"github.com/untillpro/dynobuffers"

	"github.com/untillpro/dataobjects/pkg/objects"
)

// Dynobuffer schemes map
type Schemes struct {
	schemes map[string]*dynobuffers.Scheme
}

// Codec encodes materialized record instances into dynobuffer bytes
// and decodes them back
type Codec struct {
	schemes *Schemes
	mat     objects.Materializer
}
