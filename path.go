package mutables

import (
	"strconv"
	"strings"
)

// Path is a parsed, unescaped sequence of segments.
type Path []string

const (
	separator = '.'
	escape    = '\\'
)

// Parse splits a dotted path into segments. A dot preceded by a backslash
// is part of the segment rather than a separator. Any other backslash,
// including a trailing one, is kept literally, so Parse cannot fail.
func Parse(path string) Path {
	segments := make(Path, 0, strings.Count(path, ".")+1)
	var b strings.Builder
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == escape && i+1 < len(path) && path[i+1] == separator:
			b.WriteByte(separator)
			i++
		case c == separator:
			segments = append(segments, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	return append(segments, b.String())
}

// String re-escapes literal dots and joins the segments, such that
// Parse(p.String()) is equal to p. The one exception is a segment ending
// in a backslash that is followed by another segment: the grammar has no
// way to spell it.
func (p Path) String() string {
	escaped := make([]string, len(p))
	for i, s := range p {
		escaped[i] = escapeSegment(s)
	}
	return strings.Join(escaped, ".")
}

// Append returns a new Path with the given raw segments added.
func (p Path) Append(segments ...string) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	return append(out, segments...)
}

func escapeSegment(s string) string {
	if !strings.ContainsRune(s, separator) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == separator {
			b.WriteByte(escape)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// index reports whether segment addresses a sequence position: only
// non-empty runs of ASCII digits that fit in an int qualify.
func index(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return i, true
}
