package books

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a book id typed by the operator.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return uint(n), nil
}

// ParseQuantity parses a stock quantity. Negative values are accepted.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	return n, nil
}
