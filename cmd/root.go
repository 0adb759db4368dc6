// Package cmd implements the seam command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/icon"
	"github.com/seam-cli/seam/key"
	"github.com/seam-cli/seam/log"
	"github.com/seam-cli/seam/style"
	"github.com/seam-cli/seam/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   constant.Seam,
	Short: "Fetch live stream sources from streaming platforms",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Fetch live stream sources from streaming platforms"),
	Version:       constant.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, _ []string) {
		handleErr(cmd.Help())
	},
}

// persistentBool registers a global flag that overrides a config key.
func persistentBool(name, short, configKey, usage string) {
	rootCmd.PersistentFlags().BoolP(name, short, false, usage)
	lo.Must0(viper.BindPFlag(configKey, rootCmd.PersistentFlags().Lookup(name)))
}

func init() {
	rootCmd.SetVersionTemplate("{{ .Version }}\n")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))

	persistentBool("fingerprint", "F", key.NetworkFingerprint, "Use a browser TLS fingerprint for upstream requests")

	help := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		help(cmd, args)
		version.Notify()
	})
}

var helpColors = cc.Config{
	Headings:      cc.HiCyan + cc.Bold + cc.Underline,
	Commands:      cc.HiYellow + cc.Bold,
	Example:       cc.Italic,
	ExecName:      cc.Bold,
	Flags:         cc.Bold,
	FlagsDataType: cc.Italic + cc.HiBlue,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if viper.GetBool(key.CliColored) {
		helpColors.RootCmd = rootCmd
		cc.Init(&helpColors)
	}
	handleErr(rootCmd.Execute())
}

// handleErr logs err, reports it on stderr and exits.
func handleErr(err error) {
	if err == nil {
		return
	}
	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.TrimSpace(err.Error()))
	os.Exit(1)
}
