package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/robbyt/go-polycompile/engines/types"
)

type versionPayload struct {
	Tool      string   `json:"tool"`
	Version   string   `json:"version"`
	GoVersion string   `json:"go_version"`
	Engines   []string `json:"engines"`
}

func newVersionCmd() *cobra.Command {
	var format string

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the polycompile version and available engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := versionPayload{
				Tool:      "polycompile",
				Version:   version,
				GoVersion: runtime.Version(),
			}
			for _, t := range types.All() {
				payload.Engines = append(payload.Engines, t.String())
			}

			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "pretty":
				colorFlag, err := cmd.Flags().GetString("color")
				if err != nil {
					return err
				}
				colorMode, err := parseColorMode(colorFlag)
				if err != nil {
					return err
				}
				name := color.New(color.FgCyan, color.Bold)
				applyColorMode(colorMode, name)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\nengines: %s\n",
					name.Sprint(payload.Tool), payload.Version, payload.GoVersion,
					strings.Join(payload.Engines, ", "))
				return err
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}

	versionCmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return versionCmd
}
