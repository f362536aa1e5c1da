package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCache(t *testing.T) {
	Convey("Given a catalog body", t, func() {
		key := Key("https://example.com/catalog.json")
		body := []byte(`[{"id_progetto":"a"}]`)

		Convey("Keys are stable and url specific", func() {
			So(key, ShouldEqual, Key("https://example.com/catalog.json"))
			So(key, ShouldNotEqual, Key("https://example.com/other.json"))
		})

		Convey("A written body reads back", func() {
			So(Write(key, body), ShouldBeNil)

			got, ok := Read(key, time.Hour)
			So(ok, ShouldBeTrue)
			So(string(got), ShouldEqual, string(body))

			exists := lo.Must(filesystem.API().Exists(filepath.Join(dir(), key+".tmp")))
			So(exists, ShouldBeFalse)
		})

		Convey("Expired entries are ignored and collected", func() {
			So(Write(key, body), ShouldBeNil)
			old := time.Now().Add(-2 * time.Hour)
			So(filesystem.API().Chtimes(filepath.Join(dir(), key), old, old), ShouldBeNil)

			_, ok := Read(key, time.Hour)
			So(ok, ShouldBeFalse)

			CollectGarbage(time.Hour)
			exists := lo.Must(filesystem.API().Exists(filepath.Join(dir(), key)))
			So(exists, ShouldBeFalse)
		})

		Convey("Missing entries are a miss", func() {
			_, ok := Read(Key("https://nowhere.example"), time.Hour)
			So(ok, ShouldBeFalse)
		})
	})
}
