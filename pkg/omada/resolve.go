package omada

import (
	"context"
	"strings"
)

// findOne materializes a collection and returns the first element match
// accepts. Absence is reported as ErrNotFound. Cost is one full fetch per
// lookup; the controller has no single-item endpoint for every resource
// kind, and results are deliberately not cached across calls.
func findOne[T any](ctx context.Context, fetch func(context.Context) ([]T, error), match func(*T) bool) (*T, error) {
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(&items[i]) {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// canonicalMAC lowercases a hardware address and strips the separator
// styles controllers and humans mix (colons, dashes, dots).
func canonicalMAC(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ':', '-', '.':
			return -1
		}
		return r
	}, s)
}

// macEqual reports whether two hardware addresses are the same modulo
// case and separator style.
func macEqual(a, b string) bool {
	ca := canonicalMAC(a)
	return len(ca) == 12 && ca == canonicalMAC(b)
}
