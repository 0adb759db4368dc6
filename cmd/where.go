package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/icon"
	"github.com/seam-cli/seam/style"
	"github.com/seam-cli/seam/util"
	"github.com/seam-cli/seam/where"
	"github.com/spf13/cobra"
)

// location is a path seam owns on disk.
// Clearable locations are directories "seam clear" may wipe.
type location struct {
	name      string
	flag      string
	short     mo.Option[string]
	path      func() string
	hidden    bool
	clearable bool
}

var locations = []location{
	{name: "Config", flag: "config", short: mo.Some("c"), path: where.Config},
	{name: "Config file", flag: "file", short: mo.Some("f"), path: where.ConfigFile, hidden: true},
	{name: "Logs", flag: "logs", short: mo.Some("l"), path: where.Logs, clearable: true},
	{name: "Cache", flag: "cache", path: where.Cache, clearable: true},
}

// selectorFlags adds one boolean flag per location to cmd.
func selectorFlags(cmd *cobra.Command, locs []location, usage func(location) string) {
	for _, loc := range locs {
		if short, ok := loc.short.Get(); ok {
			cmd.Flags().BoolP(loc.flag, short, false, usage(loc))
		} else {
			cmd.Flags().Bool(loc.flag, false, usage(loc))
		}
		if loc.hidden {
			lo.Must0(cmd.Flags().MarkHidden(loc.flag))
		}
	}
}

// selected returns the locations whose flag is set on cmd.
func selected(cmd *cobra.Command, locs []location) []location {
	return lo.Filter(locs, func(loc location, _ int) bool {
		return lo.Must(cmd.Flags().GetBool(loc.flag))
	})
}

func clearable() []location {
	return lo.Filter(locations, func(loc location, _ int) bool { return loc.clearable })
}

func init() {
	rootCmd.AddCommand(whereCmd, clearCmd)

	selectorFlags(whereCmd, locations, func(loc location) string { return "Print the " + loc.name + " path" })
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(loc location, _ int) string { return loc.flag })...)
	whereCmd.SetOut(os.Stdout)

	selectorFlags(clearCmd, clearable(), func(loc location) string { return "Clear the " + loc.name + " directory" })
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the paths seam reads and writes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		if picked := selected(cmd, locations); len(picked) > 0 {
			_, _ = fmt.Fprintln(out, picked[0].path())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(locations, func(loc location, _ int) bool { return loc.hidden })
		for i, loc := range visible {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintf(out, "%s %s\n%s\n", header(loc.name+"?"), style.Fg(color.Yellow)("--"+loc.flag), loc.path())
		}
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and logged files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		picked := selected(cmd, clearable())
		if len(picked) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, loc := range picked {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), loc.name))
			err := util.Delete(loc.path())
			erase()
			handleErr(err)
			fmt.Printf("%s %s directory cleared\n", icon.Get(icon.Success), loc.name)
		}
	},
}
