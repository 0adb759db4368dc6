// Package util holds small helpers shared by the CLI and the network layer.
package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/seam-cli/seam/filesystem"
	"golang.org/x/exp/constraints"
)

// Quantify formats count with the singular or plural label.
func Quantify(count int, singular, plural string) string {
	label := plural
	if count == 1 {
		label = singular
	}
	return fmt.Sprintf("%d %s", count, label)
}

// PrintErasable writes msg to stderr and returns a func blanking that line again.
func PrintErasable(msg string) (erase func()) {
	_, _ = fmt.Fprint(os.Stderr, "\r"+msg)
	return func() {
		blank := strings.Repeat(" ", runewidth.StringWidth(msg))
		_, _ = fmt.Fprint(os.Stderr, "\r"+blank+"\r")
	}
}

// Ignore calls f and discards its error.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest of items, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) T {
	var top T
	for i, item := range items {
		if i == 0 || item > top {
			top = item
		}
	}
	return top
}

// Delete removes a file or a directory tree.
// A path that is already gone is not an error.
func Delete(path string) error {
	err := filesystem.API().RemoveAll(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
