package player

import (
	"fmt"
)

// VLC plays streams with VLC media player.
// VLC only understands the Referer and User-Agent headers.
type VLC struct{}

// NewVLC returns a VLC player.
func NewVLC() *VLC {
	return &VLC{}
}

func (*VLC) Name() string { return "vlc" }

func (v *VLC) Play(rawURL, title string, headers map[string]string) error {
	args, err := vlcArgs(rawURL, title, headers)
	if err != nil {
		return err
	}
	return start(v.Name(), args)
}

func vlcArgs(rawURL, title string, headers map[string]string) ([]string, error) {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{"--meta-title=" + sanitizeTitle(title)}
	if ref, ok := headers["Referer"]; ok {
		args = append(args, "--http-referrer="+ref)
	}
	if ua, ok := headers["User-Agent"]; ok {
		args = append(args, "--http-user-agent="+ua)
	}
	return append(args, target), nil
}
