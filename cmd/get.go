package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/seam-cli/seam/config"
	"github.com/seam-cli/seam/filesystem"
	"github.com/seam-cli/seam/icon"
	"github.com/seam-cli/seam/key"
	"github.com/seam-cli/seam/live"
	"github.com/seam-cli/seam/log"
	"github.com/seam-cli/seam/player"
	"github.com/seam-cli/seam/provider"
	"github.com/seam-cli/seam/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringArrayP("header", "H", []string{}, `Extra request header as "Name: value" (repeatable)`)
	getCmd.Flags().String("cookie", "", "Cookie header sent to the platform")
	getCmd.Flags().StringP("format", "f", "", "Keep only urls of this format (flv, m3u, rtmp or a platform tag)")
	lo.Must0(getCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{live.Flv.String(), live.M3U.String(), live.Rtmp.String()}, cobra.ShellCompDirectiveNoFileComp
	}))
	getCmd.Flags().BoolP("url", "u", false, "Print stream urls only, one per line")
	getCmd.Flags().BoolP("play", "p", false, "Open the first stream url in the configured player")
	getCmd.Flags().String("player", "", "Player used by --play")
	lo.Must0(getCmd.RegisterFlagCompletionFunc("player", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return player.Names, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, getCmd.Flags().Lookup("player")))
	getCmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	getCmd.Flags().DurationP("timeout", "t", 0, "Upstream timeout, network.timeout when unset")

	getCmd.SetOut(os.Stdout)
}

// getCmd resolves a room into its normalized node.
var getCmd = &cobra.Command{
	Use:   "get [platform] [rid]",
	Short: "Fetch a live room and print its stream urls",
	Long: `Fetch a live room from a platform and print the normalized result as JSON.
When only a room id is given the platform falls back to platform.default, or to an interactive prompt.`,
	Example:           "  seam get bili 6\n  seam get huya 880201 -f m3u -u\n  seam get afreeca nanajam777 --play",
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completionPlatforms,
	Run: func(cmd *cobra.Command, args []string) {
		platform, rid, err := resolvePlatform(args)
		handleErr(err)

		l, ok := provider.Get(platform)
		if !ok {
			handleErr(errUnknownPlatform(platform))
		}

		headers, err := parseHeaders(
			lo.Must(cmd.Flags().GetStringArray("header")),
			lo.Must(cmd.Flags().GetString("cookie")),
		)
		handleErr(err)

		format := mo.None[live.Format]()
		if f := lo.Must(cmd.Flags().GetString("format")); f != "" {
			format = mo.Some(live.ParseFormat(f))
		}

		timeout := lo.Must(cmd.Flags().GetDuration("timeout"))
		if timeout <= 0 {
			timeout = config.Timeout()
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s room %s...", icon.Get(icon.Progress), platform, rid))
		node, err := l.Get(ctx, rid, headers)
		erase()
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%s did not answer within %s: %w", platform, timeout, err)
		}
		handleErr(err)
		log.Platform(platform).WithField("rid", rid).Infof("fetched %d urls", len(node.URLs))

		if node.Offline() {
			fmt.Fprintf(os.Stderr, "%s %s is offline\n", icon.Get(icon.Offline), rid)
		} else {
			fmt.Fprintf(os.Stderr, "%s %s is live\n", icon.Get(icon.Live), rid)
			node.URLs = filterURLs(node.URLs, format.ToPointer())
			if f, ok := format.Get(); ok && len(node.URLs) == 0 {
				handleErr(fmt.Errorf("%s has no %s urls", rid, f))
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("play")):
			handleErr(play(node, headers))
		case lo.Must(cmd.Flags().GetBool("url")):
			if node.Offline() {
				fmt.Fprintf(os.Stderr, "%s no urls to print\n", icon.Get(icon.Warn))
				return
			}
			handleErr(write(cmd, lo.Must(cmd.Flags().GetString("output")), strings.Join(urlLines(node), "\n")))
		default:
			handleErr(write(cmd, lo.Must(cmd.Flags().GetString("output")), node.JSON()))
		}
	},
}

// resolvePlatform splits args into platform and rid.
func resolvePlatform(args []string) (platform, rid string, err error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}

	rid = args[0]
	if platform = viper.GetString(key.PlatformDefault); platform != "" {
		return platform, rid, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", fmt.Errorf("no platform given and %s is not set", key.PlatformDefault)
	}

	options := lo.Map(provider.Builtin().Providers(), func(p provider.Provider, _ int) string {
		return p.Key
	})
	err = survey.AskOne(&survey.Select{
		Message: "Platform",
		Options: options,
		Description: func(value string, _ int) string {
			p, _ := provider.Builtin().Lookup(value)
			return p.Name
		},
	}, &platform)
	return platform, rid, err
}

func urlLines(node *live.Node) []string {
	return lo.Map(node.URLs, func(u live.Url, _ int) string {
		return u.URL
	})
}

func write(cmd *cobra.Command, path, content string) error {
	if path == "" {
		cmd.Println(content)
		return nil
	}
	if err := filesystem.API().WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s wrote %s\n", icon.Get(icon.Success), path)
	return nil
}

func play(node *live.Node, headers map[string]string) error {
	if node.Offline() {
		return fmt.Errorf("%s is offline, nothing to play", node.RID)
	}

	p, err := player.New(viper.GetString(key.Player))
	if err != nil {
		return err
	}
	if err := checkPlayer(p); err != nil {
		return err
	}

	target := node.URLs[0]
	fmt.Fprintf(os.Stderr, "%s playing %s (%s)\n", icon.Get(icon.Play), node.Title, target.Format)
	return p.Play(target.URL, node.Title, headers)
}
