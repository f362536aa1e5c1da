package cmd

import (
	"fmt"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/query"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/mydrama-tv/mydrama/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), func() error { return util.Delete(where.Cache()) }},
	{"queries history", "queries", mo.Some("q"), func() error { return query.Default().Forget() }},
	{"temp directory", "temp", mo.Some("t"), func() error { return util.Delete(where.Temp()) }},
	{"watch history", "history", mo.Some("s"), func() error {
		return withStore(func(s storeHandles) error { return s.history.Clear() })
	}},
	{"favorites", "favorites", mo.Some("f"), func() error {
		return withStore(func(s storeHandles) error { return s.raw.Delete(constant.FavoritesKey) })
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached files, search queries and stored data",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
