package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mydrama-tv/mydrama/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		var hits atomic.Int32
		var agent atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			agent.Store(r.UserAgent())
			if r.URL.Path == "/broken" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := NewClient(0, 5*time.Second)

		Convey("A successful response returns the body", func() {
			body, err := Get(context.Background(), client, srv.URL+"/ok")
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "[]")
			So(agent.Load(), ShouldEqual, constant.UserAgent)
		})

		Convey("A failing response is not retried with zero retries", func() {
			_, err := Get(context.Background(), client, srv.URL+"/broken")
			So(err, ShouldNotBeNil)
			So(hits.Load(), ShouldEqual, 1)
		})

		Convey("Retries are honoured when configured", func() {
			client := NewClient(1, 5*time.Second)
			client.RetryWaitMin = time.Millisecond
			client.RetryWaitMax = time.Millisecond
			_, err := Get(context.Background(), client, srv.URL+"/broken")
			So(err, ShouldNotBeNil)
			So(hits.Load(), ShouldEqual, 2)
		})
	})

	Convey("fields pairs keys with values", t, func() {
		f := fields([]any{"url", "x", "attempt", 2, "dangling"})
		So(f, ShouldHaveLength, 2)
		So(f["attempt"], ShouldEqual, 2)
	})
}
