package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablepick/internal/config"
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
)

// normalized is what validate prints: the clamped layout plus runtime
// settings.
type normalized struct {
	Layout  layout.LayoutConfig `yaml:"layout"`
	Runtime config.Runtime      `yaml:"runtime"`
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a picker configuration and print the normalized values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.configPath == "" {
				return fmt.Errorf("validate requires --config")
			}

			file, err := config.ParseFile(root.configPath)
			if err != nil {
				return err
			}
			if err := config.Validate(file); err != nil {
				return err
			}

			data, err := config.Marshal(normalized{
				Layout:  file.Layout(),
				Runtime: file.Runtime(),
			})
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid\n", root.configPath)
			_, err = out.Write(data)
			return err
		},
	}

	return cmd
}
