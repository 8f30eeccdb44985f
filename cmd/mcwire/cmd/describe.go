package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

func describeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the packet table of a protocol version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := a.proto.Describe()
			out := cmd.OutOrStdout()

			switch format {
			case "toml":
				return toml.NewEncoder(out).Encode(spec)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(spec)
			}
			return fmt.Errorf("--format: unknown format %q", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "toml or json")
	return cmd
}
