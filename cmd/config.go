package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/config"
	"github.com/seam-cli/seam/filesystem"
	"github.com/seam-cli/seam/icon"
	"github.com/seam-cli/seam/style"
	"github.com/seam-cli/seam/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(name string) error {
	closest := lo.MinBy(config.Keys(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Filter(config.Keys(), func(k string, _ int) bool {
		return strings.HasPrefix(k, toComplete)
	})
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// lookupField returns the field registered under name.
func lookupField(name string) (config.Field, error) {
	field, ok := config.Default[name]
	if !ok {
		return config.Field{}, errUnknownKey(name)
	}
	return field, nil
}

// keyArg takes the key from the first positional argument, then from --key.
func keyArg(cmd *cobra.Command, args []string) (config.Field, error) {
	name := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return config.Field{}, errors.New("key is required as an argument or --key flag")
	}
	return lookupField(name)
}

func success(cmd *cobra.Command, format string, a ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func keyFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("key", "k", "", usage)
	_ = cmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configWriteCmd, configDeleteCmd, configResetCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	keyFlag(configGetCmd, "Key to print")

	keyFlag(configSetCmd, "Key to change")
	configSetCmd.Flags().StringP("value", "v", "", "New value for the key")

	configWriteCmd.Flags().BoolP("force", "f", false, "Replace an existing config file")

	keyFlag(configResetCmd, "Key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change seam configuration",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys with their values and defaults",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		names := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(names) == 0 {
			names = config.Keys()
		}

		fields := make([]*config.Field, 0, len(names))
		for _, name := range names {
			field, err := lookupField(name)
			handleErr(err)
			fields = append(fields, &field)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lo.Map(fields, func(f *config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := keyArg(cmd, args)
		handleErr(err)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), viper.Get(field.Key))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Change the value of a key",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := keyArg(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetString("value"))
		if len(args) == 2 {
			raw = args[1]
		} else if !cmd.Flags().Changed("value") {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		value, err := field.Parse(raw)
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(config.Save())
		success(cmd, "set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		path := where.ConfigFile()
		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(filesystem.API().RemoveAll(path))
		}
		handleErr(viper.SafeWriteConfigAs(path))
		success(cmd, "wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		handleErr(filesystem.API().Remove(where.ConfigFile()))
		success(cmd, "deleted config")
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore keys to their factory defaults",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for _, field := range config.Default {
				viper.Set(field.Key, field.Value)
			}
			handleErr(config.Save())
			success(cmd, "reset all config values")
			return
		}

		field, err := keyArg(cmd, args)
		handleErr(err)
		viper.Set(field.Key, field.Value)
		handleErr(config.Save())
		success(cmd, "reset %s to default value %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}
