package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered configuration key with its default and help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `mydrama config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.MyDrama + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default maps every key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to MYDRAMA_* variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.CatalogURL, constant.DefaultCatalogURL, "URL of the JSON catalog of projects")
	register(key.CatalogRetries, 0, "How many times a failed catalog request is retried.\n0 disables retries: a failed fetch leaves the catalog empty")
	register(key.CatalogTimeout, "20s", "Timeout of a single catalog request")
	register(key.CatalogOffline, false, "Keep a copy of the last catalog downloaded and use it when the catalog cannot be fetched")
	register(key.CatalogCacheTTL, "168h", "How long the offline copy of the catalog stays usable")
	register(key.CatalogHomeLimit, 6, "How many projects per category are shown on the home page.\n0 shows all of them")
	register(key.StorageBackend, constant.StorageFile, "Where favorites and history are stored.\nAvailable options are: file, sqlite")
	register(key.HistoryLimit, 20, "Maximum number of entries kept in the watch history")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUICardWidth, 28, "Width of a catalog card in the grid, in cells")
	register(key.TUIReleaseGap, "450ms", "Silence after the last Enter repeat that counts as the key being released")
	register(key.TUILongPress, "2s", "How long Enter must be held to trigger the long-press action")
	register(key.TUIMouse, true, "Enable mouse support in the player view")
	register(key.PlayerControlsTimeout, "3s", "Inactivity after which the player controls are hidden")
	register(key.PlayerNextPromptSeconds, 20, "Remaining seconds at which the next episode prompt appears")
	register(key.PlayerSeekStep, 10, "Seconds skipped by the left and right arrows during playback")
	register(key.PlayerAutoplayNext, false, "Start the next episode automatically when one ends")
	register(key.PlayerFullscreen, true, "Ask the player to go fullscreen when playback starts")
	register(key.RemoteEnable, false, "Accept key events from a remote control over HTTP")
	register(key.RemoteAddr, "127.0.0.1:7878", "Address the remote control bridge listens on")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Check for new versions on startup")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
