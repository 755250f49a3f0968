package codec

import "github.com/Suhaibinator/SMedia/pkg/mediatype"

// Resolve maps media type text, typically lifted straight from a
// Content-Type or Accept header, to the codec that will handle it.
// Resolution is permissive: absent, malformed, and unknown media types
// all fall back to Default rather than failing. The lookup order is an
// exact (type, subtype) match first, then a structured-syntax suffix
// match, so "application/vnd.api+json" lands on the JSON codec. A match
// that cannot operate in the requested direction is skipped and the
// search continues.
func Resolve(mimeText string, dir Direction) ID {
	m, ok := mediatype.Parse(mimeText)
	if !ok {
		return Default
	}
	return ResolveMediaType(m, dir)
}

// ResolveMediaType is Resolve for an already-parsed media type.
func ResolveMediaType(m mediatype.MediaType, dir Direction) ID {
	if id, ok := byType[m.String()]; ok && capable(id, dir) {
		return id
	}
	if m.Suffix != "" {
		if id, ok := bySuffix[m.Type+"/*+"+m.Suffix]; ok && capable(id, dir) {
			return id
		}
	}
	return Default
}

// ResolveDecoder resolves media type text to the codec that will decode
// a request body carrying it. The default codec decodes, so the result
// is always usable.
func ResolveDecoder(mimeText string) Unmarshaler {
	return byID[Resolve(mimeText, DirectionDecode)].(Unmarshaler)
}

// ResolveEncoder resolves a parsed media type to the codec that will
// serialize a response body for it.
func ResolveEncoder(m mediatype.MediaType) Marshaler {
	return byID[ResolveMediaType(m, DirectionEncode)].(Marshaler)
}

// DefaultEncoder returns the codec used when no encoding preference was
// given.
func DefaultEncoder() Marshaler {
	return byID[Default].(Marshaler)
}

func capable(id ID, dir Direction) bool {
	c, ok := byID[id]
	if !ok {
		return false
	}
	if dir == DirectionEncode {
		_, ok = c.(Marshaler)
	} else {
		_, ok = c.(Unmarshaler)
	}
	return ok
}
