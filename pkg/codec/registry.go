package codec

import (
	"fmt"
	"sort"
)

// The registry maps media types to codecs. It is written only by
// register calls made from init functions in the per-codec files and is
// read-only afterwards, so lookups need no locking.
var (
	byID     = make(map[ID]Codec)
	byType   = make(map[string]ID) // exact match, e.g. "application/json"
	bySuffix = make(map[string]ID) // suffix match, e.g. "application/*+json"
)

// register adds c to the codec set. It panics on duplicate IDs or media
// type claims: the set is assembled during package initialization, and
// a collision there is a programming error, not a runtime condition.
func register(c Codec) {
	id := c.ID()
	if _, dup := byID[id]; dup {
		panic(fmt.Sprintf("codec: register called twice for %q", id))
	}
	if _, marshals := c.(Marshaler); !marshals {
		if _, unmarshals := c.(Unmarshaler); !unmarshals {
			panic(fmt.Sprintf("codec: %q implements neither Marshaler nor Unmarshaler", id))
		}
	}
	byID[id] = c
	for _, mt := range c.MediaTypes() {
		if prev, dup := byType[mt]; dup {
			panic(fmt.Sprintf("codec: media type %q claimed by both %q and %q", mt, prev, id))
		}
		byType[mt] = id
	}
	for _, pat := range c.Suffixes() {
		if prev, dup := bySuffix[pat]; dup {
			panic(fmt.Sprintf("codec: suffix %q claimed by both %q and %q", pat, prev, id))
		}
		bySuffix[pat] = id
	}
}

// Get returns the codec registered under id.
func Get(id ID) (Codec, bool) {
	c, ok := byID[id]
	return c, ok
}

// Has reports whether id is part of the compiled-in set.
func Has(id ID) bool {
	_, ok := byID[id]
	return ok
}

// Registered returns the IDs of every compiled-in codec, sorted.
func Registered() []ID {
	ids := make([]ID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
