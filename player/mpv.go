package player

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/seam-cli/seam/log"
)

// MPV plays streams with mpv.
type MPV struct{}

// NewMPV returns an mpv player.
func NewMPV() *MPV {
	return &MPV{}
}

func (*MPV) Name() string { return "mpv" }

// Play starts mpv on url.
func (m *MPV) Play(rawURL, title string, headers map[string]string) error {
	args, err := mpvArgs(rawURL, title, headers)
	if err != nil {
		return err
	}
	log.Debugf("launching mpv with %d args", len(args))
	return start(m.Name(), args)
}

// mpvArgs builds the mpv command line. It passes only the title,
// headers and target so the user's mpv.conf stays in charge.
func mpvArgs(rawURL, title string, headers map[string]string) ([]string, error) {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	safeTitle := sanitizeTitle(title)
	args := []string{
		"--no-terminal",
		"--force-window=yes",
		fmt.Sprintf("--force-media-title=%s", safeTitle),
		fmt.Sprintf("--title=%s", safeTitle),
	}

	if lines := headerLines(headers); len(lines) > 0 {
		escaped := make([]string, len(lines))
		for i, l := range lines {
			escaped[i] = strings.ReplaceAll(l, ",", "%2C")
		}
		args = append(args, "--http-header-fields="+strings.Join(escaped, ","))
	}

	return append(args, target), nil
}

// sanitizeMediaTarget rejects anything mpv could read as a flag and
// restricts remote targets to http(s).
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "rtmp":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
