package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Directories are created on demand", func() {
			for _, dir := range []string{Config(), Cache(), Logs(), Store(), Temp()} {
				So(dir, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(dir)), ShouldBeTrue)
			}
		})

		Convey("The config directory can be overridden", func() {
			custom := filepath.Join(os.TempDir(), "mydrama-custom")
			t.Setenv(EnvConfigPath, custom)
			So(Config(), ShouldEqual, custom)
			So(Database(), ShouldEqual, filepath.Join(custom, "mydrama.db"))
		})
	})
}
