// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sdkgen/plugins/client-ts/generator"
)

func (a *app) checkCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the generated client is up to date",
		Long: `Generate the client in memory and compare it with the files on disk.
Exits with an error listing every stale or missing file. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {

			var result *generator.Result
			if result, err = a.generate(cmd.Context()); err != nil {
				return err
			}
			var stale []string
			if stale, err = generator.Check(result, a.cfg.Out, a.docs()); err != nil {
				return err
			}
			if len(stale) > 0 {
				for _, file := range stale {
					fmt.Fprintf(cmd.OutOrStdout(), "stale: %s\n", file)
				}
				return fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "client is up to date")
			return nil
		},
	}
}
