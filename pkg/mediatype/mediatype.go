// Package mediatype parses MIME media type strings into a canonical form.
// It is the parsing layer underneath codec resolution: media types coming
// from Content-Type and Accept headers are free-form client input, so
// parsing never fails loudly; callers treat a malformed value the same
// way they treat an absent one.
package mediatype

import (
	"mime"
	"strings"
)

// MediaType is the parsed form of a media type string such as
// "application/vnd.api+json; charset=utf-8". Type and Subtype are
// lowercase and parameters are discarded. Suffix holds the
// structured-syntax suffix ("json" for "application/vnd.api+json") or
// is empty when the subtype has none. A MediaType is a value; nothing
// modifies it after Parse returns.
type MediaType struct {
	Type    string
	Subtype string
	Suffix  string
}

// Parse interprets s as a MIME media type. The boolean result reports
// whether s was well formed; tokens without a subtype ("json"),
// empty strings, and garbage all come back false. Matching elsewhere
// is done on the lowercase, parameter-free form this returns.
func Parse(s string) (MediaType, bool) {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return MediaType{}, false
	}
	// mime.ParseMediaType accepts bare tokens ("json") because they are
	// legal in Content-Disposition; a media type needs both halves.
	typ, sub, ok := strings.Cut(mt, "/")
	if !ok || typ == "" || sub == "" {
		return MediaType{}, false
	}
	m := MediaType{Type: typ, Subtype: sub}
	if i := strings.LastIndex(sub, "+"); i >= 0 && i < len(sub)-1 {
		m.Suffix = sub[i+1:]
	}
	return m, true
}

// String returns the canonical "type/subtype" form without parameters.
func (m MediaType) String() string {
	return m.Type + "/" + m.Subtype
}
