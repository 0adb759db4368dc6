package player

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/seam-cli/seam/constant"
)

// IINA plays streams with the macOS IINA app through LaunchServices.
type IINA struct{}

// NewIINA returns an IINA player.
func NewIINA() *IINA {
	return &IINA{}
}

// Name is the launcher IINA is started through.
func (*IINA) Name() string { return "open" }

func (i *IINA) Play(rawURL, title string, headers map[string]string) error {
	if runtime.GOOS != constant.Darwin {
		return fmt.Errorf("IINA is only supported on macOS")
	}
	args, err := iinaArgs(rawURL, title, headers)
	if err != nil {
		return err
	}
	return start(i.Name(), args)
}

// iinaArgs forwards mpv options to IINA with the --mpv- prefix.
func iinaArgs(rawURL, title string, headers map[string]string) ([]string, error) {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{"-a", "IINA", target, "--args", "--mpv-force-media-title=" + sanitizeTitle(title)}
	if lines := headerLines(headers); len(lines) > 0 {
		args = append(args, "--mpv-http-header-fields="+strings.Join(lines, ","))
	}
	return args, nil
}
