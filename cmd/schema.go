package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/seam-cli/seam/live"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the document printed by \"seam get\"",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(nodeSchema()))
	},
}

func nodeSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(&live.Node{})
	s.Title = "Node"
	s.Description = "A live room resolved by seam"
	return s
}
