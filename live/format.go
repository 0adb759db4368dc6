package live

import "github.com/invopop/jsonschema"

type formatKind uint8

const (
	// other is the zero kind so that the zero Format equals Other("").
	other formatKind = iota
	flv
	m3u
	rtmp
)

// Format classifies the container or transport of a playback URL.
//
// It behaves as a closed sum type with an open escape hatch: Flv, M3U, Rtmp,
// or Other(tag) for transports that have no dedicated variant yet.
// Format values are comparable with ==.
type Format struct {
	kind formatKind
	tag  string
}

// Known playback formats.
var (
	Flv  = Format{kind: flv}
	M3U  = Format{kind: m3u}
	Rtmp = Format{kind: rtmp}
)

// Other returns a Format carrying an arbitrary tag, serialized verbatim.
func Other(tag string) Format {
	return Format{kind: other, tag: tag}
}

// ParseFormat maps a serialized token back to its variant.
// Unknown tokens, including the empty string, become Other(s).
func ParseFormat(s string) Format {
	switch s {
	case "flv":
		return Flv
	case "m3u":
		return M3U
	case "rtmp":
		return Rtmp
	default:
		return Other(s)
	}
}

// Tag returns the tag of an Other format.
func (f Format) Tag() (string, bool) {
	if f.kind != other {
		return "", false
	}
	return f.tag, true
}

// String returns the lowercase short token of the format.
func (f Format) String() string {
	switch f.kind {
	case flv:
		return "flv"
	case m3u:
		return "m3u"
	case rtmp:
		return "rtmp"
	default:
		return f.tag
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	*f = ParseFormat(string(text))
	return nil
}

// JSONSchema describes Format as a plain string in generated schemas.
func (Format) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: "flv, m3u, rtmp or a platform specific tag",
		Examples:    []any{"flv", "m3u", "rtmp"},
	}
}
