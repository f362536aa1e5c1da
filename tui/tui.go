// Package tui is the full screen catalog browser and player front end.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/favorites"
	"github.com/mydrama-tv/mydrama/history"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/nav"
	"github.com/mydrama-tv/mydrama/network"
	"github.com/mydrama-tv/mydrama/playback"
	"github.com/mydrama-tv/mydrama/player"
	"github.com/mydrama-tv/mydrama/query"
	"github.com/mydrama-tv/mydrama/remote"
	"github.com/mydrama-tv/mydrama/store"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/spf13/viper"
)

// Options are the command line choices of a session.
type Options struct {
	// Page is opened first.
	Page catalog.Page
	// Search, when set, opens the search page with this query.
	Search string
	// Remote starts the HTTP remote control even if remote.enable is off.
	Remote bool
}

// Run wires storage, mpv and the browser together and blocks until the user quits.
func Run(options *Options) error {
	s, err := store.Open(viper.GetString(key.StorageBackend))
	if err != nil {
		return err
	}
	defer util.Ignore(s.Close)

	hist := history.New(s, viper.GetInt(key.HistoryLimit))

	media := player.NewMPV("")
	defer util.Ignore(media.Close)

	pc := playback.New(hist, playback.Options{
		ControlsTimeout: viper.GetDuration(key.PlayerControlsTimeout),
		PromptSeconds:   viper.GetFloat64(key.PlayerNextPromptSeconds),
		AutoplayNext:    viper.GetBool(key.PlayerAutoplayNext),
		Fullscreen:      viper.GetBool(key.PlayerFullscreen),
	})
	pc.Bind(media)
	defer pc.Unbind()

	navC := nav.New(favorites.New(s), hist, pc, nav.Options{
		HomeLimit: viper.GetInt(key.CatalogHomeLimit),
		CardWidth: viper.GetInt(key.TUICardWidth),
		SeekStep:  viper.GetFloat64(key.PlayerSeekStep),
		LongPress: viper.GetDuration(key.TUILongPress),
	})
	navC.Queries = query.Default()

	bubble := newBubble(options, navC, media)
	bubble.queries = query.Default()
	bubble.darkBackground = termenv.HasDarkBackground()
	bubble.client = network.NewClient(viper.GetInt(key.CatalogRetries), viper.GetDuration(key.CatalogTimeout))
	if viper.GetBool(key.CatalogOffline) {
		bubble.offlineTTL = viper.GetDuration(key.CatalogCacheTTL)
	}

	programOptions := []tea.ProgramOption{tea.WithAltScreen()}
	if viper.GetBool(key.TUIMouse) {
		programOptions = append(programOptions, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(bubble, programOptions...)

	if options.Remote || viper.GetBool(key.RemoteEnable) {
		srv, err := remote.Listen(viper.GetString(key.RemoteAddr), program.Send)
		if err != nil {
			return err
		}
		bubble.remoteAddr = srv.Addr()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Warnf("remote: shutdown: %s", err)
			}
		}()
	}

	_, err = program.Run()
	return err
}
