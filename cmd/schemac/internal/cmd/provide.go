/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package cmd

import "fmt"

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
