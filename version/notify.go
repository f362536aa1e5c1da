package version

import (
	"context"
	"fmt"

	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release exists.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/mydrama-tv/mydrama/releases/tag/v"+version),
	)
}
