/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

// Creates and returns new empty types registry
func New() Registry {
	return newRegistry()
}
