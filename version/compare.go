package version

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Compare orders two major.minor.patch versions, ignoring a leading "v"
// and any pre-release suffix. It returns 1 if a > b, -1 if a < b and 0 otherwise.
func Compare(a, b string) (int, error) {
	av, err := triple(a)
	if err != nil {
		return 0, err
	}
	bv, err := triple(b)
	if err != nil {
		return 0, err
	}
	return slices.Compare(av[:], bv[:]), nil
}

func triple(s string) ([3]int, error) {
	var v [3]int
	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")
	parts := strings.Split(core, ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("version %q is not major.minor.patch", s)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("version %q has a bad component %q", s, part)
		}
		v[i] = n
	}
	return v, nil
}
