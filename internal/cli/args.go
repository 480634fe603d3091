package cli

import (
	"fmt"
	"strconv"
)

// parseCoord parses a command-line coordinate argument.
func parseCoord(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return v, nil
}
