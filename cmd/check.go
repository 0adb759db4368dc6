package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/icon"
	"github.com/seam-cli/seam/player"
	"github.com/seam-cli/seam/style"
)

// installCommands maps an OS to the command installing a player binary.
// The iina launcher is the macOS "open" utility, so its hint names the cask.
var installCommands = map[string]func(bin string) string{
	constant.Darwin: func(bin string) string {
		if bin == "open" {
			return "brew install --cask iina"
		}
		return "brew install " + bin
	},
	constant.Linux:   func(bin string) string { return "sudo apt install " + bin },
	constant.Windows: func(bin string) string { return "scoop install " + bin },
}

func installHint(goos, bin string) string {
	if hint, ok := installCommands[goos]; ok {
		return hint(bin)
	}
	return ""
}

// checkPlayer reports on stderr when p is not on PATH.
func checkPlayer(p player.Player) error {
	if player.Available(p) {
		return nil
	}
	_, _ = fmt.Fprintln(os.Stderr, missingPlayer(p.Name(), installHint(runtime.GOOS, p.Name())))
	return fmt.Errorf("player %s is not installed", p.Name())
}

func missingPlayer(bin, hint string) string {
	lines := []string{
		style.New().Bold(true).Foreground(style.HiRed).Render(icon.Get(icon.Fail) + " Missing player"),
		"",
		style.New().Foreground(style.Text).Render(fmt.Sprintf("%q was not found in PATH.", bin)),
	}
	if hint != "" {
		lines = append(lines, "", "Install it with:", "  "+style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
