package open

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Poster links must be absolute web links", t, func() {
		u, err := Validate(" https://cdn.example.org/p/1.jpg ")
		So(err, ShouldBeNil)
		So(u.Host, ShouldEqual, "cdn.example.org")

		for _, raw := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "/relative.jpg", "https://"} {
			_, err := Validate(raw)
			So(errors.Is(err, ErrNotWebLink), ShouldBeTrue)
		}
	})

	Convey("Invalid links are never handed to the desktop", t, func() {
		So(errors.Is(URL("ftp://example.org/x"), ErrNotWebLink), ShouldBeTrue)
	})
}
