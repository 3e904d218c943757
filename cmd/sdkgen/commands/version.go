// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package commands

import (
	"fmt"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func versionCmd() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show sdkgen version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {

			info := versionInfo{
				Version:   Version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format version: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(output))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sdkgen %s\nPlatform: %s\nGo: %s\n", info.Version, info.Platform, info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	return cmd
}
