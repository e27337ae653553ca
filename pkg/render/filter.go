package render

import (
	"regexp"

	"github.com/aretw0/crib/pkg/core"
)

// CompileFilters compiles every argument into a case-insensitive regular
// expression, keeping argument order. The first invalid argument aborts
// compilation with a *core.InvalidFilterPatternError.
func CompileFilters(args []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(args))
	for _, arg := range args {
		// Checked bare first so the error quotes only the argument.
		if _, err := regexp.Compile(arg); err != nil {
			return nil, &core.InvalidFilterPatternError{Pattern: arg, Err: err}
		}
		re, err := regexp.Compile("(?i)" + arg)
		if err != nil {
			return nil, &core.InvalidFilterPatternError{Pattern: arg, Err: err}
		}
		filters = append(filters, re)
	}
	return filters, nil
}

// Matches reports whether every filter matches the key, the value or at
// least one tag of e.
func Matches(e core.Entry, filters []*regexp.Regexp) bool {
	for _, f := range filters {
		if !matchesAny(e, f) {
			return false
		}
	}
	return true
}

func matchesAny(e core.Entry, f *regexp.Regexp) bool {
	if f.MatchString(e.Key) || f.MatchString(e.Value) {
		return true
	}
	for _, tag := range e.Tags {
		if f.MatchString(tag) {
			return true
		}
	}
	return false
}

// Select returns the entries matched by all filters, in their original
// order. With no filters every entry is selected.
func Select(entries []core.Entry, filters []*regexp.Regexp) []core.Entry {
	selected := make([]core.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, filters) {
			selected = append(selected, e)
		}
	}
	return selected
}
