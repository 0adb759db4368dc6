package version

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/icon"
	"github.com/seam-cli/seam/key"
	"github.com/seam-cli/seam/style"
	"github.com/seam-cli/seam/util"
	"github.com/spf13/viper"
)

const checkTimeout = 3 * time.Second

// Notify prints a notice when a newer release than the running build exists.
// It does nothing unless cli.version_check is enabled.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a newer release...")
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}
	announce(os.Stdout, latest, constant.Version)
}

// announce writes the upgrade notice when latest is newer than current.
func announce(w io.Writer, latest, current string) bool {
	if order, err := Compare(latest, current); err != nil || order <= 0 {
		return false
	}
	_, _ = fmt.Fprintf(w, "\n%s %s %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		"Release",
		style.Bold(latest),
		style.Faint("is out, this is "+current),
		style.Faint(icon.Get(icon.Link)+" "+releasePage(latest)),
	)
	return true
}

func releasePage(v string) string {
	return "https://github.com/seam-cli/seam/releases/tag/v" + v
}
