// Package version checks GitHub releases for newer builds of seam.
package version

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/seam-cli/seam/filesystem"
	"github.com/seam-cli/seam/network"
	"github.com/seam-cli/seam/where"
)

// ReleasesURL is the GitHub endpoint describing the latest release.
var ReleasesURL = "https://api.github.com/repos/seam-cli/seam/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the "v" prefix.
// Results are cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	ver, err = fetchLatest(ctx, network.Client)
	if err != nil {
		return "", err
	}
	_ = versionCacher.Set(ver)
	return ver, nil
}

func fetchLatest(ctx context.Context, client *http.Client) (string, error) {
	req, err := network.NewRequest(ctx, http.MethodGet, ReleasesURL, nil, map[string]string{
		"Accept": "application/vnd.github+json",
	}, nil)
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := network.FetchJSON(client, req, &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}
