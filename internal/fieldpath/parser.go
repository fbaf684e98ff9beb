package fieldpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex parses a single segment, e.g. `wages` or `wages[1]`.
// Names follow the snapshot's yaml tag convention: snake_case.
var segmentRegex = regexp.MustCompile(`^([a-z][a-z0-9_]*)(?:\[(\d+)\])?$`)

// Parse creates a Path by parsing its canonical string representation.
func Parse(raw string) (*Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	p := &Path{}
	for _, segStr := range strings.Split(raw, ".") {
		if segStr == "" {
			return nil, fmt.Errorf("field path %q contains an empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(segStr)
		if matches == nil {
			return nil, fmt.Errorf("invalid field path segment %q", segStr)
		}

		seg := NewSegment(matches[1])
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				// Unreachable due to the regex \d+.
				return nil, fmt.Errorf("internal error parsing index in %q: %w", segStr, err)
			}
			seg.Index = index
		}
		p.Segments = append(p.Segments, seg)
	}

	return p, nil
}

// MustParse is Parse for compile-time-known paths; it panics on error.
func MustParse(raw string) *Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
