//go:build !windows

package player

import "syscall"

// sysProcAttr puts the player in its own process group so it survives the CLI.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}
