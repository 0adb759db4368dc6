package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/samber/lo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/config"
	"github.com/seam-cli/seam/style"
	"github.com/seam-cli/seam/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envNames lists every environment variable seam reads, sorted.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(name string, _ int) string {
		field := config.Default[name]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables seam reads",
	Long:  `List the environment variables seam reads together with their values in the current process.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		name := style.New().Bold(true).Foreground(color.Purple).Render

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			present = present && value != ""
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			shown := style.Fg(color.Red)("unset")
			if present {
				shown = style.Fg(color.Green)(value)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name(env), shown)
		}
	},
}
