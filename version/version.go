// Package version checks GitHub for newer releases of mydrama.
package version

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/mydrama-tv/mydrama/network"
	"github.com/mydrama-tv/mydrama/where"
	"github.com/tidwall/gjson"
)

// ReleasesURL is the GitHub API endpoint of the latest release.
var ReleasesURL = "https://api.github.com/repos/mydrama-tv/mydrama/releases/latest"

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

	body, err := network.Get(ctx, network.NewClient(0, 10*time.Second), ReleasesURL)
	if err != nil {
		return "", err
	}

	tag := gjson.GetBytes(body, "tag_name").String()
	if tag == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(tag, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}
