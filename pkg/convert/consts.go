/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package convert

// Struct tag key used to rename ("schema:\"otherName\"") or exclude
// ("schema:\"-\"") record fields
const fieldTag = "schema"
