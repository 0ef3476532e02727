package cliutil

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// HandleOutput writes result to the command's output in the format chosen
// by the --format flag.
func HandleOutput(cmd *cobra.Command, result any) error {
	formatFlag, _ := cmd.Flags().GetString("format")

	var output []byte
	var err error

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case "json", "":
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q, want json or yaml", formatFlag)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// ParsePair parses "a,b" into two floats.
func ParsePair(s string) (float64, float64, error) {
	var a, b float64
	if _, err := fmt.Sscanf(s, "%g,%g", &a, &b); err != nil {
		return 0, 0, fmt.Errorf("parse pair %q: %w", s, err)
	}
	return a, b, nil
}
