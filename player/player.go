// Package player launches external media players on a resolved stream URL.
package player

import (
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Player starts playback of a stream in an external process.
type Player interface {
	// Name returns the executable the player runs.
	Name() string

	// Play starts playback of url with the given window title.
	// headers are forwarded to the player's HTTP stack.
	Play(url, title string, headers map[string]string) error
}

// Names lists the supported players.
var Names = []string{"mpv", "iina", "vlc"}

// New returns the player registered under name.
func New(name string) (Player, error) {
	switch strings.ToLower(name) {
	case "mpv":
		return NewMPV(), nil
	case "iina":
		return NewIINA(), nil
	case "vlc":
		return NewVLC(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected one of %s", name, strings.Join(Names, ", "))
	}
}

// Available reports whether the executable behind p is installed.
func Available(p Player) bool {
	_, err := exec.LookPath(p.Name())
	return err == nil
}

// headerLines renders headers as "Name: value" pairs in key order.
func headerLines(headers map[string]string) []string {
	keys := lo.Keys(headers)
	slices.Sort(keys)
	return lo.Map(keys, func(k string, _ int) string {
		return k + ": " + headers[k]
	})
}

// start launches the player detached from the terminal and does not wait for it.
func start(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return cmd.Process.Release()
}
