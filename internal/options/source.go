// Package options holds checks shared by the functional-option APIs.
package options

import (
	"fmt"
	"strings"
)

// Source names one input-source option and whether it was given.
type Source struct {
	Option string
	Set    bool
}

// ExactlyOne returns an error unless exactly one of sources is set.
// The message is prefixed with pkg and lists the option names.
func ExactlyOne(pkg string, sources ...Source) error {
	names := make([]string, 0, len(sources))
	var set []string
	for _, s := range sources {
		names = append(names, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%s: must specify an input source (use %s)", pkg, joinOr(names))
	default:
		return fmt.Errorf("%s: must specify exactly one input source, got %s", pkg, strings.Join(set, " and "))
	}
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "an input option"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
