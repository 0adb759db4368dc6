package config

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/seam-cli/seam/color"
	"github.com/seam-cli/seam/constant"
	"github.com/seam-cli/seam/key"
	"github.com/seam-cli/seam/style"
	"github.com/spf13/viper"
)

// Field is one configuration key with its factory default.
type Field struct {
	Key         string
	Value       any
	Description string
}

var fields = []Field{
	{key.PlatformDefault, "", "Platform used by \"seam get\" when only a room id is given.\nType \"seam platforms\" to show available platforms"},
	{key.NetworkTimeout, 15, "Seconds to wait for a platform to answer before giving up"},
	{key.NetworkUserAgent, constant.UserAgent, "User-Agent sent upstream unless an adapter or --header overrides it"},
	{key.NetworkFingerprint, false, "Use a browser TLS fingerprint for upstream requests"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},
	{key.Player, "mpv", "Media player used by \"seam get --play\".\nAvailable options are: mpv, iina, vlc"},
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, false, "Check for a newer release after printing help or version"},
}

// Default indexes every field by key.
var Default = lo.SliceToMap(fields, func(f Field) (string, Field) {
	return f.Key, f
})

// EnvExposed lists the keys bound to SEAM_* environment variables.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string { return f.Key })

// Keys returns every configuration key in sorted order.
func Keys() []string {
	keys := lo.Keys(Default)
	slices.Sort(keys)
	return keys
}

// Env returns the environment variable overriding the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Seam + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Type names the Go type of the default value.
func (f *Field) Type() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Parse converts a command-line value to the field's type.
func (f *Field) Parse(raw string) (any, error) {
	switch f.Value.(type) {
	case string:
		return raw, nil
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %q", f.Key, raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", f.Key, raw)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%s has unsupported type %T", f.Key, f.Value)
	}
}

// MarshalJSON includes the current value next to the default.
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
		Type:        f.Type(),
	})
}

// Pretty renders the field for "seam config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  viper.Get,
	"hl":     highlight,
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .Type }}`))
