package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/mydrama-tv/mydrama/focus"
	"github.com/mydrama-tv/mydrama/internal/ui"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/nav"
	"github.com/mydrama-tv/mydrama/player"
	"github.com/mydrama-tv/mydrama/press"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// suggester proposes a past search for a partial query.
type suggester interface {
	Suggest(q string) mo.Option[string]
}

type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	progressC progress.Model
	helpC     help.Model

	nav      *nav.Controller
	media    player.Media
	repeat   *press.Repeat
	notifier *ui.Notifier
	queries  suggester

	client     *retryablehttp.Client
	catalogURL string
	// offlineTTL enables the offline catalog copy when positive
	offlineTTL time.Duration
	// remoteAddr is where the remote control listens, if it does
	remoteAddr string

	gridScroll   focus.Scroller
	detailScroll focus.Scroller

	markdown       *glamour.TermRenderer
	markdownWidth  int
	darkBackground bool

	// geometry of the seek bar in the last player frame
	barX, barY, barWidth int

	width, height    int
	cardWidth        int
	searchSuggestion mo.Option[string]
	lastError        error

	options *Options
}

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// syncState derives the browsing state from the session.
func (b *statefulBubble) syncState() {
	if b.state == loadingState || b.state == errorState {
		return
	}

	s := b.nav.Session()
	switch {
	case b.nav.Player().Active():
		b.setState(playerState)
	case s.Selected != nil:
		b.setState(detailState)
	case s.Typing():
		b.setState(searchState)
	default:
		b.setState(gridState)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.helpC.Width = b.width
	b.progressC.Width = max(10, b.width)
	b.inputC.Width = max(10, b.width-lipgloss.Width(b.inputC.Prompt)-1)

	b.nav.Resize(b.width)
}

func newBubble(options *Options, navC *nav.Controller, media player.Media) *statefulBubble {
	if options == nil {
		options = &Options{}
	}

	bubble := &statefulBubble{
		keymap:         newStatefulKeymap(),
		nav:            navC,
		media:          media,
		repeat:         press.NewRepeat(viper.GetDuration(key.TUIReleaseGap)),
		notifier:       &ui.Notifier{},
		catalogURL:     viper.GetString(key.CatalogURL),
		cardWidth:      viper.GetInt(key.TUICardWidth),
		darkBackground: true,
		options:        options,
	}
	if bubble.cardWidth <= 0 {
		bubble.cardWidth = nav.DefaultOptions().CardWidth
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Titolo, genere o attore"
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = "Cerca: "
	bubble.inputC.Focus()

	bubble.progressC = progress.New(progress.WithGradient(string(style.Rose), string(style.Pink)), progress.WithoutPercentage())

	navC.GoTo(options.Page)
	if options.Search != "" {
		navC.Search(options.Search)
	}

	bubble.setState(loadingState)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}
