// Package icon renders status symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/seam-cli/seam/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Progress
	Live
	Offline
	Play
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "+", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "", plain: "x", kaomoji: "(×﹏×)", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(•̀ᴗ•́)", squares: "🟨"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", kaomoji: "(・_・;)", squares: "🟦"},
	Live:     {emoji: "🔴", nerd: "", plain: "*", kaomoji: "(ﾉ◕ヮ◕)ﾉ", squares: "🟥"},
	Offline:  {emoji: "💤", nerd: "", plain: "-", kaomoji: "(￣o￣) zzZ", squares: "⬛"},
	Play:     {emoji: "🍿", nerd: "", plain: ">", kaomoji: "ヽ(°〇°)ﾉ", squares: "🟪"},
	Link:     {emoji: "🔗", nerd: "", plain: "#", kaomoji: "(⌐■_■)", squares: "🟫"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns i rendered in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
