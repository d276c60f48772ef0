/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/untillpro/dataobjects/pkg/decl"
	"github.com/untillpro/dataobjects/pkg/schemas"
)

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <package.yaml> ...",
		Short: "Compiles YAML package declarations and prints the schemas as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := schemas.New()

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				types, err := decl.CompilePackage(reg, data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if logger.IsVerbose() {
					logger.Verbose(fmt.Sprintf("%s: compiled %d types", path, len(types)))
				}
			}

			var err error
			reg.Types(func(t schemas.Type) {
				if err != nil {
					return
				}
				var data []byte
				if data, err = schemas.ToJSON(t); err == nil {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
				}
			})
			return err
		},
	}
}
