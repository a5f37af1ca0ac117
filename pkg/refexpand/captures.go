package refexpand

import "regexp"

// Captures resolves group names and indices to matched text.
//
// Both lookups return the matched text and whether the group exists. A
// group that exists but did not participate in the match reports
// ("", true). Index 0 conventionally denotes the entire match.
//
// Implementations must be pure: repeated lookups return the same result,
// and the value must remain valid for the duration of an expansion.
type Captures interface {
	// Name returns the text matched by the named group.
	Name(name string) (string, bool)

	// Index returns the text matched by the group at index i.
	Index(i int) (string, bool)
}

// MapCaptures is a literal Captures implementation backed by maps.
// The zero value resolves nothing. Indexed[0] is the whole match.
//
// Example:
//
//	caps := refexpand.MapCaptures{
//	    Named:   map[string]string{"name": "World"},
//	    Indexed: []string{"Hello World", "World"},
//	}
type MapCaptures struct {
	Named   map[string]string
	Indexed []string
}

// Name implements Captures.
func (m MapCaptures) Name(name string) (string, bool) {
	text, ok := m.Named[name]
	return text, ok
}

// Index implements Captures.
func (m MapCaptures) Index(i int) (string, bool) {
	if i < 0 || i >= len(m.Indexed) {
		return "", false
	}
	return m.Indexed[i], true
}

// RegexpCaptures adapts a completed regexp match to the Captures
// interface. It does not perform any matching itself.
type RegexpCaptures struct {
	names map[string]int
	match []string
}

// NewRegexpCaptures pairs a compiled pattern with the submatches of one of
// its matches, as returned by FindStringSubmatch. Named groups are mapped
// to their indices via SubexpNames.
//
// Example:
//
//	re := regexp.MustCompile(`(?P<year>\d{4})-(\d{2})`)
//	caps := refexpand.NewRegexpCaptures(re, re.FindStringSubmatch("2026-08"))
func NewRegexpCaptures(re *regexp.Regexp, match []string) RegexpCaptures {
	names := make(map[string]int)
	for i, name := range re.SubexpNames() {
		if name != "" {
			names[name] = i
		}
	}
	return RegexpCaptures{names: names, match: match}
}

// Name implements Captures.
func (c RegexpCaptures) Name(name string) (string, bool) {
	i, ok := c.names[name]
	if !ok {
		return "", false
	}
	return c.Index(i)
}

// Index implements Captures.
func (c RegexpCaptures) Index(i int) (string, bool) {
	if i < 0 || i >= len(c.match) {
		return "", false
	}
	return c.match[i], true
}
