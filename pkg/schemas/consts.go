/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

const (
	// Empty name
	NullName = ""

	// Maximum identifier length
	MaxIdentLen = 255

	// Used as delimiter in qualified names and in names of nested types
	QNameQualifierChar = "."
)
