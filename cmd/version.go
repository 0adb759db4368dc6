package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/provider"
	"github.com/seam-cli/seam/style"
	"github.com/seam-cli/seam/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Print build information as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	versionCmd.SetOut(os.Stdout)
}

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Adapters int    `json:"adapters"`
}

func currentBuild() buildInfo {
	return buildInfo{
		App:      constant.Seam,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		Adapters: provider.Builtin().Len(),
	}
}

var buildTemplate = template.Must(template.New("build").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Purple),
}).Parse(`{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Revision" }}    {{ bold .Revision }}
  {{ faint "Built at" }}    {{ bold .BuiltAt }}
  {{ faint "Built by" }}    {{ bold .BuiltBy }}
  {{ faint "Target" }}      {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Platforms" }}   {{ bold (print .Adapters) }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Long:  "Print the seam version, build revision, target platform and bundled platform count.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(constant.Version)
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(out).Encode(currentBuild()))
		default:
			handleErr(buildTemplate.Execute(out, currentBuild()))
			version.Notify()
		}
	},
}
