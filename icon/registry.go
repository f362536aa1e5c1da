package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Heart
	OnAir
	Play
	Pause
	Muted
	Volume
	Search
	History
	Next
	Remote
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(o_o)",
		squares: "🟨",
	},
	Heart: {
		emoji:   "❤️",
		nerd:    "",
		plain:   "<3",
		kaomoji: "(♥ω♥)",
		squares: "🟥",
	},
	OnAir: {
		emoji:   "🔴",
		nerd:    "",
		plain:   "ON AIR",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "🟥",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟩",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(－‸ლ)",
		squares: "🟨",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "mute",
		kaomoji: "(＞﹏＜)",
		squares: "⬛",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "(◕‿◕)",
		squares: "⬜",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・ )?",
		squares: "🟦",
	},
	History: {
		emoji:   "🕘",
		nerd:    "",
		plain:   "~",
		kaomoji: "(￣▽￣)",
		squares: "🟪",
	},
	Next: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   ">>",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "🟦",
	},
	Remote: {
		emoji:   "📺",
		nerd:    "",
		plain:   "tv",
		kaomoji: "(⌐■_■)",
		squares: "🟫",
	},
}
