package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// render prints v as indented JSON under --json, otherwise the text view.
func render(cmd *cobra.Command, v any, text func() string) error {
	if wantJSON(cmd) {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text())
	return nil
}
