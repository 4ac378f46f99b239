package model

import "strings"

// Genre tags live in a single text column encoded as "{Rock,Jazz,Folk}":
// comma-separated values wrapped in braces, a leftover from the previous
// system's array columns.  The codec below is the only place that knows
// about the encoding; everything else works with []string.
//
// DecodeGenres tolerates malformed stored values (missing braces, stray
// whitespace, empty segments) and degrades to an empty list rather than
// failing.  EncodeGenres(DecodeGenres(s)) is not guaranteed to reproduce a
// malformed s, but decode(encode(tags)) is the identity for any tag list
// whose elements contain no commas or braces.

// DecodeGenres parses a stored genre string into an ordered tag list.
// An empty or malformed value yields an empty list, never an error.
func DecodeGenres(stored string) []string {
	s := strings.TrimSpace(stored)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EncodeGenres renders an ordered tag list into the stored column format.
// Tags are trimmed; empty tags are dropped.  An empty list encodes as "{}".
func EncodeGenres(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return "{" + strings.Join(kept, ",") + "}"
}
