package cmd

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/live"
	"github.com/seam-cli/seam/provider"
	"github.com/seam-cli/seam/style"
	"github.com/spf13/cobra"
)

// parseHeaders turns repeated "Name: value" flags into a header map.
// A non-empty cookie is added as the Cookie header and wins over -H.
func parseHeaders(raw []string, cookie string) (map[string]string, error) {
	if len(raw) == 0 && cookie == "" {
		return nil, nil
	}

	headers := make(map[string]string, len(raw)+1)
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q, expected \"Name: value\"", h)
		}
		headers[name] = strings.TrimSpace(value)
	}

	if cookie != "" {
		headers["Cookie"] = cookie
	}
	return headers, nil
}

// filterURLs keeps the urls whose format is f. A nil f keeps everything.
func filterURLs(urls []live.Url, f *live.Format) []live.Url {
	if f == nil {
		return urls
	}
	return lo.Filter(urls, func(u live.Url, _ int) bool {
		_, err := u.As(*f)
		return err == nil
	})
}

func errUnknownPlatform(key string) error {
	keys := provider.Builtin().Keys()
	if len(keys) == 0 {
		return fmt.Errorf("unknown platform %s", key)
	}

	closest := lo.MinBy(keys, func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	return errors.New(fmt.Sprintf(
		"unknown platform %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	))
}

func completionPlatforms(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return fuzzy.FindFold(toComplete, provider.Builtin().Keys()), cobra.ShellCompDirectiveNoFileComp
}
