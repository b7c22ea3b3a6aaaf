// Package resource identifies documents independently of any open view.
package resource

import "strings"

// Resource is a URI-like string identifying a document.
//
// Resources compare as exact strings: case-sensitive, untrimmed, no
// normalization beyond what the producer already did. Two resources are
// the same document if and only if their string forms are equal.
type Resource string

// String returns the resource's string form.
func (r Resource) String() string {
	return string(r)
}

// Scheme returns the URI scheme, or "" if the resource has none.
// The scheme is everything before the first ':', accepted only if it
// starts with a letter and contains scheme characters (RFC 3986).
func (r Resource) Scheme() string {
	s := string(r)
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return ""
	}
	scheme := s[:i]
	if !isAlpha(scheme[0]) {
		return ""
	}
	for j := 1; j < len(scheme); j++ {
		c := scheme[j]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return ""
		}
	}
	return scheme
}

// IsWeb returns true only for resources whose scheme is exactly
// "http" or "https".
func (r Resource) IsWeb() bool {
	scheme := r.Scheme()
	return scheme == "http" || scheme == "https"
}

// IsZero returns true for the empty resource.
func (r Resource) IsZero() bool {
	return r == ""
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
