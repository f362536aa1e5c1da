// Package key lists every configuration key mydrama understands.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 26

// Catalog source.
const (
	CatalogURL       = "catalog.url"
	CatalogRetries   = "catalog.retries"
	CatalogTimeout   = "catalog.timeout"
	CatalogHomeLimit = "catalog.home_limit"
	CatalogOffline   = "catalog.offline"
	CatalogCacheTTL  = "catalog.cache_ttl"
)

// Persistence of favorites and watch history.
const (
	StorageBackend = "storage.backend"
	HistoryLimit   = "history.limit"
)

const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

const (
	IconsVariant = "icons.variant"
)

// Terminal user interface.
const (
	TUICardWidth  = "tui.card_width"
	TUIReleaseGap = "tui.release_gap"
	TUILongPress  = "tui.long_press"
	TUIMouse      = "tui.mouse"
)

// Playback.
const (
	PlayerControlsTimeout   = "player.controls_timeout"
	PlayerNextPromptSeconds = "player.next_prompt_seconds"
	PlayerSeekStep          = "player.seek_step"
	PlayerAutoplayNext      = "player.autoplay_next"
	PlayerFullscreen        = "player.fullscreen"
)

// Remote control bridge.
const (
	RemoteEnable = "remote.enable"
	RemoteAddr   = "remote.addr"
)

const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
