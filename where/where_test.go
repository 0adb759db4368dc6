package where

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/seam-cli/seam/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func isDir(path string) bool {
	return lo.Must(filesystem.API().IsDir(path))
}

func TestDirectories(t *testing.T) {
	Convey("Given the in-memory filesystem", t, func() {
		Convey("Each directory exists once resolved", func() {
			for _, resolve := range []func() string{Config, Cache, Logs} {
				path := resolve()
				So(path, ShouldNotBeEmpty)
				So(isDir(path), ShouldBeTrue)
			}
		})

		Convey("The override variable replaces the config directory", func() {
			t.Setenv(EnvConfigPath, "/tmp/seam-test-config")
			So(Config(), ShouldEqual, "/tmp/seam-test-config")
			So(isDir("/tmp/seam-test-config"), ShouldBeTrue)
			So(Logs(), ShouldEqual, "/tmp/seam-test-config/logs")
		})

		Convey("An empty override is ignored", func() {
			t.Setenv(EnvConfigPath, "")
			So(filepath.Base(Config()), ShouldEqual, "seam")
		})

		Convey("The config file sits in the config directory", func() {
			So(filepath.Dir(ConfigFile()), ShouldEqual, Config())
			So(filepath.Base(ConfigFile()), ShouldEqual, "seam.toml")
		})
	})
}

func TestUserDir(t *testing.T) {
	Convey("A failing resolver falls back", t, func() {
		failing := func() (string, error) { return "", errors.New("no home") }
		So(userDir(failing, "cache"), ShouldEqual, "cache")
		So(userDir(func() (string, error) { return "/home/u/.cache", nil }, "cache"), ShouldEqual, "/home/u/.cache")
	})
}
