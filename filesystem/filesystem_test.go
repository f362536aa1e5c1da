package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Defaults to the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
			So(IsMem(), ShouldBeFalse)
		})

		Convey("Switches to memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
			So(IsMem(), ShouldBeTrue)
		})

		Convey("GacheFs writes through the active backend", func() {
			SetMemMapFs()
			fs := GacheFs{}
			So(fs.MkdirAll("/a/b", os.ModePerm), ShouldBeNil)
			f, err := fs.OpenFile("/a/b/c.json", os.O_CREATE|os.O_RDWR, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("[]"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("/a/b/c.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "[]")
		})
	})
}
