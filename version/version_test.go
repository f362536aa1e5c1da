package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mydrama-tv/mydrama/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		cmp, err := Compare("0.3.1", "v0.3.0")
		So(err, ShouldBeNil)
		So(cmp, ShouldEqual, 1)

		cmp, _ = Compare("1.0.0", "1.0.0")
		So(cmp, ShouldEqual, 0)

		cmp, _ = Compare("0.9.9", "1.0.0")
		So(cmp, ShouldEqual, -1)

		_, err = Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.3","name":"mydrama 1.2.3"}`))
		}))
		defer srv.Close()
		ReleasesURL = srv.URL

		ver, err := Latest(context.Background())
		So(err, ShouldBeNil)
		So(ver, ShouldEqual, "1.2.3")
	})
}
