package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/provider"
	"github.com/seam-cli/seam/style"
	"github.com/seam-cli/seam/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(platformsCmd)

	platformsCmd.Flags().BoolP("raw", "r", false, "Print keys only, without header and names")
	platformsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	platformsCmd.MarkFlagsMutuallyExclusive("raw", "json")

	platformsCmd.SetOut(os.Stdout)
}

var platformsCmd = &cobra.Command{
	Use:     "platforms [filter]",
	Short:   "List the supported live streaming platforms",
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		providers := provider.Builtin().Providers()
		if len(args) == 1 {
			providers = lo.Filter(providers, func(p provider.Provider, _ int) bool {
				return fuzzy.MatchFold(args[0], p.Key) || fuzzy.MatchFold(args[0], p.Name)
			})
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			type entry struct {
				Key  string `json:"key"`
				Name string `json:"name"`
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(lo.Map(providers, func(p provider.Provider, _ int) entry {
				return entry{Key: p.Key, Name: p.Name}
			})))
		case lo.Must(cmd.Flags().GetBool("raw")):
			for _, p := range providers {
				cmd.Println(p.Key)
			}
		default:
			cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render(util.Quantify(len(providers), "platform", "platforms") + ":"))
			width := util.Max(lo.Map(providers, func(p provider.Provider, _ int) int { return len(p.Key) })...)
			for _, p := range providers {
				cmd.Printf("%s%s  %s\n", style.Fg(color.Yellow)(p.Key), strings.Repeat(" ", width-len(p.Key)), p.Name)
			}
		}
	},
}
