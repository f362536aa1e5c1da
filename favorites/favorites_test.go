package favorites

import (
	"testing"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/filesystem"
	"github.com/mydrama-tv/mydrama/store"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSet(t *testing.T) {
	Convey("Given a file store", t, func() {
		s := store.NewFile("/favorites/" + t.Name() + ".json")
		So(s.Delete(constant.FavoritesKey), ShouldBeNil)

		set := New(s)
		So(set.Len(), ShouldEqual, 0)

		Convey("Toggle adds then removes", func() {
			on, err := set.Toggle("p1")
			So(err, ShouldBeNil)
			So(on, ShouldBeTrue)
			So(set.Has("p1"), ShouldBeTrue)

			on, err = set.Toggle("p1")
			So(err, ShouldBeNil)
			So(on, ShouldBeFalse)
			So(set.Has("p1"), ShouldBeFalse)
		})

		Convey("Adding twice keeps one id", func() {
			added, _ := set.Add("p1")
			So(added, ShouldBeTrue)
			added, _ = set.Add("p1")
			So(added, ShouldBeFalse)
			So(set.List(), ShouldResemble, []string{"p1"})
		})

		Convey("The set is persisted as a JSON array", func() {
			_, _ = set.Add("b")
			_, _ = set.Add("a")

			raw, err := s.Load(constant.FavoritesKey)
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, `["b","a"]`)
			So(New(s).List(), ShouldResemble, []string{"b", "a"})
		})

		Convey("Removing a missing id is not an error", func() {
			removed, err := set.Remove("nope")
			So(err, ShouldBeNil)
			So(removed, ShouldBeFalse)
		})
	})

	Convey("Given corrupt persisted data", t, func() {
		s := store.NewFile("/favorites/corrupt.json")
		So(s.Save(constant.FavoritesKey, []byte(`[1, 2`)), ShouldBeNil)

		set := New(s)
		So(set.Len(), ShouldEqual, 0)

		_, err := set.Add("x")
		So(err, ShouldBeNil)
		So(New(s).List(), ShouldResemble, []string{"x"})
	})
}
