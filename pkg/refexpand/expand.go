package refexpand

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Expander substitutes capture group references in template strings.
//
// Create with NewBuilder() or one of the presets (Default, Python).
// Expander is immutable after construction and safe for concurrent use.
type Expander struct {
	subChar              rune
	delims               *delimiters
	allowUndelimitedName bool
	strict               bool
}

// delimiters is an open/close string pair bounding a delimited reference.
// Both strings are non-empty; Builder.Delimiters enforces this.
type delimiters struct {
	open  string
	close string
}

// SubChar returns the substitution character.
func (e *Expander) SubChar() rune {
	return e.subChar
}

// Delimiters returns the configured delimiter pair and whether delimiters
// are configured at all.
func (e *Expander) Delimiters() (open, close string, ok bool) {
	if e.delims == nil {
		return "", "", false
	}
	return e.delims.open, e.delims.close, true
}

// AllowUndelimitedName reports whether undelimited group names are
// recognized.
func (e *Expander) AllowUndelimitedName() bool {
	return e.allowUndelimitedName
}

// Strict reports whether unresolved or malformed references are errors.
func (e *Expander) Strict() bool {
	return e.strict
}

// Expand expands group references in template using the values from caps.
//
// Always succeeds when the expander is not strict; in strict mode it
// returns a *SyntaxError for malformed references and a *GroupError for
// references that resolve to no capture group.
//
// Example:
//
//	exp := refexpand.Default()
//	result, err := exp.Expand(caps, "Hello ${name}")
func (e *Expander) Expand(caps Captures, template string) (string, error) {
	var sb strings.Builder
	if err := e.ExpandTo(&sb, caps, template); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustExpand expands group references in template and panics on error.
//
// Use this with lenient expanders, which only fail when the output sink
// fails, or when the template is known to be valid.
func (e *Expander) MustExpand(caps Captures, template string) string {
	result, err := e.Expand(caps, template)
	if err != nil {
		panic(fmt.Sprintf("refexpand: %v", err))
	}
	return result
}

// ExpandAll expands group references in every template.
//
// Returns a new slice with the expanded strings. On error, returns nil and
// the first error encountered.
func (e *Expander) ExpandAll(caps Captures, templates []string) ([]string, error) {
	if templates == nil {
		return nil, nil
	}

	results := make([]string, len(templates))
	for i, t := range templates {
		expanded, err := e.Expand(caps, t)
		if err != nil {
			return nil, err
		}
		results[i] = expanded
	}
	return results, nil
}

// ExpandTo expands group references in template and appends the output
// to dst.
//
// Expansion is a single left-to-right pass. When an error is reported,
// whatever was already written remains in dst; there is no rollback.
// Sink write errors abort the scan and are returned unchanged.
func (e *Expander) ExpandTo(dst io.Writer, caps Captures, template string) error {
	for i := 0; i < len(template); {
		// Copy the literal run up to the next substitution character.
		next := strings.IndexRune(template[i:], e.subChar)
		if next < 0 {
			_, err := io.WriteString(dst, template[i:])
			return err
		}
		if next > 0 {
			if _, err := io.WriteString(dst, template[i:i+next]); err != nil {
				return err
			}
			i += next
		}

		size := utf8.RuneLen(e.subChar)
		skip, err := e.substitute(dst, caps, template[i+size:], i)
		if err != nil {
			return err
		}
		i += size + skip
	}
	return nil
}

// substitute resolves one substitution site. tail is the text immediately
// following the substitution character and offset its byte position in the
// template. Returns the number of bytes of tail consumed.
//
// The reference forms are tried in priority order: escaped substitution
// character, delimited name, undelimited name, bare decimal number. When
// none match, a lenient expander emits the substitution character as
// literal text and consumes nothing, leaving the tail to be re-scanned.
func (e *Expander) substitute(dst io.Writer, caps Captures, tail string, offset int) (int, error) {
	if r, size := utf8.DecodeRuneInString(tail); size > 0 && r == e.subChar {
		_, err := io.WriteString(dst, string(e.subChar))
		return size, err
	}

	id, skip, ok := "", 0, false
	if e.delims != nil {
		id, skip, ok = parseID(tail, e.delims.open, e.delims.close)
	}
	if !ok && e.allowUndelimitedName {
		id, skip, ok = parseID(tail, "", "")
	}
	if ok {
		return skip, e.resolve(dst, caps, id)
	}

	if end, num, ok := parseDecimal(tail, 0); ok {
		if text, exists := caps.Index(num); exists {
			if _, err := io.WriteString(dst, text); err != nil {
				return 0, err
			}
		} else if e.strict {
			return 0, &GroupError{Group: strconv.Itoa(num)}
		}
		return end, nil
	}

	if e.strict {
		return 0, &SyntaxError{Offset: offset}
	}
	_, err := io.WriteString(dst, string(e.subChar))
	return 0, err
}

// resolve writes the capture text for an extracted identifier. The
// identifier is looked up as a group name first, then as a group index.
func (e *Expander) resolve(dst io.Writer, caps Captures, id string) error {
	if text, ok := caps.Name(id); ok {
		_, err := io.WriteString(dst, text)
		return err
	}
	if num, err := strconv.Atoi(id); err == nil {
		if text, ok := caps.Index(num); ok {
			_, err := io.WriteString(dst, text)
			return err
		}
	}
	if e.strict {
		return &GroupError{Group: id}
	}
	return nil
}
