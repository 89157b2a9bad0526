package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/crosspath/pkg/crosspath"
)

// NewSchemaCmd returns the schema command, which emits the JSON Schema for
// the configuration file format.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Emit the JSON Schema for the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			schema, err := crosspath.ConfigSchema()
			if err != nil {
				return err
			}

			b, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}

			fmt.Fprintln(cc.OutOrStdout(), string(b))

			return nil
		},
	}
}
