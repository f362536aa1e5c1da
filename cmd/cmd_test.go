package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func init() {
	filesystem.SetMemMapFs()
}

func fixture() []catalog.Project {
	film := catalog.Project{
		ID:       "f1",
		Title:    "Il film",
		Genres:   []string{"Romance", "On Air"},
		Category: catalog.CategoryFilm,
		Video:    catalog.VideoData{URL: "https://cdn.example/f1.mp4"},
	}
	drama := catalog.Project{ID: "d1", Title: "Il drama", Category: catalog.CategoryDrama}
	drama.Video.IsSeries = true
	drama.Video.Episodes = []catalog.Episode{
		{Title: "Ep 1", URL: "https://cdn.example/d1/1.mp4"},
		{Title: "Ep 2", URL: "https://cdn.example/d1/2.mp4"},
	}
	return []catalog.Project{film, drama}
}

func TestPrintProjects(t *testing.T) {
	Convey("Given a catalog", t, func() {
		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)

		Convey("Text output lists ids, titles and kinds", func() {
			printProjects(cmd, fixture(), false, func(*catalog.Project) string { return "*" })
			text := out.String()
			So(text, ShouldContainSubstring, "f1")
			So(text, ShouldContainSubstring, "Il drama")
			So(text, ShouldContainSubstring, "2 episodi")
			So(text, ShouldContainSubstring, "On Air")
		})

		Convey("JSON output keeps the catalog field names", func() {
			printProjects(cmd, fixture(), true, nil)
			var decoded []map[string]any
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(len(decoded), ShouldEqual, 2)
			So(decoded[0]["id_progetto"], ShouldEqual, "f1")
		})

		Convey("An empty list says so", func() {
			printProjects(cmd, nil, false, nil)
			So(out.String(), ShouldContainSubstring, "Nessun titolo")
		})
	})
}

func TestLookupField(t *testing.T) {
	Convey("Unknown keys suggest the closest one", t, func() {
		_, err := lookupField("catalog.ulr")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "catalog.url")

		field, err := lookupField("tui.long_press")
		So(err, ShouldBeNil)
		So(field.Value, ShouldEqual, "2s")
	})
}

func TestCatalogSchema(t *testing.T) {
	Convey("catalog schema describes a project", t, func() {
		var out bytes.Buffer
		catalogSchemaCmd.SetOut(&out)
		defer catalogSchemaCmd.SetOut(nil)

		rootCmd.SetArgs([]string{"catalog", "schema"})
		So(rootCmd.Execute(), ShouldBeNil)

		body := out.Bytes()
		So(gjson.ValidBytes(body), ShouldBeTrue)
		So(gjson.GetBytes(body, "properties.id_progetto.type").String(), ShouldEqual, "string")
		So(gjson.GetBytes(body, "required").String(), ShouldContainSubstring, "video_data")
	})
}

func TestPages(t *testing.T) {
	Convey("Page completion offers every menu entry", t, func() {
		ids, _ := completionPages(nil, nil, "")
		So(ids, ShouldContain, "home")
		So(ids, ShouldContain, "search")
		So(len(ids), ShouldEqual, len(catalog.Pages))
	})
}
