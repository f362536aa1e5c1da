package log

import (
	"testing"

	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Structured entries are still usable", func() {
			So(func() { WithField("project", "p1").Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		Info("hello")

		Convey("A log file is created in the logs directory", func() {
			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldNotBeEmpty)
		})
	})
}
