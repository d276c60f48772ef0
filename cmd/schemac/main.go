/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package main

import (
	"os"

	"github.com/untillpro/dataobjects/cmd/schemac/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
