package crafting

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// ParseQuantity reads a desired craft quantity typed by a user.
// Input without a leading integer and a zero value fall back to DefaultQuantity.
// Negatives are returned as-is so SetQuantity treats them as a removal.
func ParseQuantity(raw string) int {
	n, ok := leadingInt(raw)
	if !ok || n == 0 {
		return DefaultQuantity
	}
	return n
}

// ParseOwned reads an owned-ingredient count typed by a user.
// Input without a leading integer is DefaultOwned and negatives are floored at zero.
func ParseOwned(raw string) int {
	n, ok := leadingInt(raw)
	if !ok || n < 0 {
		return DefaultOwned
	}
	return n
}

// leadingInt parses the optionally signed decimal digits at the start of raw,
// after leading whitespace, ignoring whatever follows: "3x" is 3, "2.5" is 2.
func leadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseView validates an ingredient view name. An empty value selects the flat view.
func ParseView(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", ViewFlat:
		return ViewFlat, nil
	case ViewGrouped:
		return ViewGrouped, nil
	default:
		return "", fmt.Errorf(ErrMsgInvalidViewFmt, raw, domain.ErrInvalidInput)
	}
}
