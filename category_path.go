package kopilka

import (
	"encoding/json"
	"strings"
)

// MaxCategoryDepth bounds the number of levels in a category path.
const MaxCategoryDepth = 3

// Uncategorized is the bucket label used for transactions without a category.
const Uncategorized = "Uncategorized"

// CategoryPath is a normalized category path of 1 to 3 segments
// ("Food" / "Groceries" / "Dairy"). Segments are whitespace-normalized once
// at construction; comparisons are case-insensitive. The zero value means
// "no category".
type CategoryPath struct {
	segments []string
}

// NewCategoryPath builds a path from raw segments. Blank segments and
// anything past the depth limit are dropped.
func NewCategoryPath(segments ...string) CategoryPath {
	var p CategoryPath
	for _, s := range segments {
		s = normalizeName(s)
		if s == "" {
			continue
		}
		p.segments = append(p.segments, s)
		if len(p.segments) == MaxCategoryDepth {
			break
		}
	}
	return p
}

// ParseCategoryPath parses a user-written path with levels separated by
// '/' ("Food / Groceries"). An empty string is the zero path.
func ParseCategoryPath(s string) CategoryPath {
	return NewCategoryPath(strings.Split(s, "/")...)
}

// normalizeName collapses runs of whitespace and trims the ends.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// nameKey is the case-folded form used for equality and deduplication.
func nameKey(s string) string {
	return strings.ToLower(normalizeName(s))
}

// IsZero reports whether the path has no segments.
func (p CategoryPath) IsZero() bool { return len(p.segments) == 0 }

// Depth returns the number of segments.
func (p CategoryPath) Depth() int { return len(p.segments) }

// Top returns the top-level segment, or "" for the zero path.
func (p CategoryPath) Top() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[0]
}

// Segments returns a copy of the path segments.
func (p CategoryPath) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Equal compares two paths case-insensitively.
func (p CategoryPath) Equal(q CategoryPath) bool {
	if len(p.segments) != len(q.segments) {
		return false
	}
	for i := range p.segments {
		if nameKey(p.segments[i]) != nameKey(q.segments[i]) {
			return false
		}
	}
	return true
}

func (p CategoryPath) String() string {
	return strings.Join(p.segments, " / ")
}

// MarshalJSON encodes the path as a JSON array of segments, or null for the zero path.
func (p CategoryPath) MarshalJSON() ([]byte, error) {
	if len(p.segments) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(p.segments)
}

// UnmarshalJSON accepts either an array of segments or a single string.
func (p *CategoryPath) UnmarshalJSON(data []byte) error {
	var segments []string
	if err := json.Unmarshal(data, &segments); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		segments = []string{s}
	}
	*p = NewCategoryPath(segments...)
	return nil
}
