// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"
)

// Source names one way of supplying input and whether it was set.
type Source struct {
	Name string
	Set  bool
}

// ValidateSingleInputSource ensures exactly one of sources is set.
// prefix is prepended to the error, e.g. "document".
func ValidateSingleInputSource(prefix string, sources ...Source) error {
	var names, set []string
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%s: must specify an input source (use %s)", prefix, strings.Join(names, ", "))
	default:
		return fmt.Errorf("%s: must specify exactly one input source, got %s", prefix, strings.Join(set, " and "))
	}
}
