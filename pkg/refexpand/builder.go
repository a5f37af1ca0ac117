package refexpand

// Builder accumulates configuration for an Expander.
//
// Builder is NOT thread-safe. Configure it from a single goroutine, then
// call Build() to freeze the configuration into an immutable Expander
// that can be safely shared.
//
// Example:
//
//	exp := refexpand.NewBuilder('$').
//	    Delimiters("{", "}").
//	    AllowUndelimitedName(true).
//	    Build()
type Builder struct {
	exp Expander
}

// NewBuilder creates a builder for an expander that uses subChar to
// introduce a substitution, with two consecutive occurrences of subChar
// denoting a literal subChar in the expansion.
//
// Any character is accepted as subChar, including one that also occurs in
// ordinary template text; escaping resolves the ambiguity.
//
// By default only numbered groups can be expanded, by following the
// substitution character with one or more decimal digits. Configure
// Delimiters and AllowUndelimitedName to enable name references.
func NewBuilder(subChar rune) *Builder {
	return &Builder{exp: Expander{subChar: subChar}}
}

// Delimiters sets a pair of non-empty strings used to enclose the name or
// number of a capture group. To be recognized, the enclosed group name or
// number must immediately follow the substitution character.
// Returns the builder for method chaining; the last call wins.
//
// Panics if either string is empty: delimiters must be unambiguously
// detectable in the template.
func (b *Builder) Delimiters(open, close string) *Builder {
	if open == "" || close == "" {
		panic("refexpand: delimiter strings cannot be empty")
	}
	b.exp.delims = &delimiters{open: open, close: close}
	return b
}

// AllowUndelimitedName controls whether a group name is recognized without
// delimiters, taken as the longest run of identifier characters (letters,
// digits, underscore) following the substitution character.
// Default: false. Returns the builder for method chaining.
func (b *Builder) AllowUndelimitedName(allow bool) *Builder {
	b.exp.allowUndelimitedName = allow
	return b
}

// Strict controls error reporting. By default expansion always succeeds:
// invalid syntax is kept as literal text and an unresolved group expands
// to the empty string. With strict enabled, both are reported as errors.
// Returns the builder for method chaining.
func (b *Builder) Strict(strict bool) *Builder {
	b.exp.strict = strict
	return b
}

// Build freezes the current options into an immutable Expander.
func (b *Builder) Build() *Expander {
	exp := b.exp
	return &exp
}
