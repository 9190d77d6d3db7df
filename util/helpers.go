package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePositiveInt parses text typed into an entry as a positive integer.
func ParsePositiveInt(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", text)
	}
	if n < 1 {
		return 0, fmt.Errorf("%d must be greater than zero", n)
	}
	return n, nil
}
