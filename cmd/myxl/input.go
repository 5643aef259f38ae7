package main

import (
	"strconv"
	"strings"
)

// parseDelCommand recognizes `del N` list inputs, returning the 1-based N.
func parseDelCommand(input string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if !strings.HasPrefix(lower, "del ") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(lower[4:]))
	if err != nil {
		return 0, false
	}
	return n, true
}
