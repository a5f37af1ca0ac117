/*
Package refexpand expands template strings using the contents of capture
groups from a prior pattern match.

# Overview

refexpand substitutes group references in a template with the text matched
by named or numbered capture groups. It supports the backreference syntax
used by common regex-replacement APIs (\1, \g<name>) as well as shell-style
interpolation ($1, ${name}), and degrades gracefully to literal text for
malformed input unless strict validation is requested.

# Basic Usage

Expand a template using one of the built-in presets:

	caps := refexpand.MapCaptures{
	    Named:   map[string]string{"name": "World"},
	    Indexed: []string{"Hello World", "World"},
	}

	exp := refexpand.Default()
	result, _ := exp.Expand(caps, "Hello ${name}, group one is $1")
	// result: "Hello World, group one is World"

The Python preset uses backslash references:

	exp := refexpand.Python()
	result, _ := exp.Expand(caps, `\1 and \g<name>`)
	// result: "World and World"

# Custom Syntax

Build an expander with your own substitution character and delimiters:

	exp := refexpand.NewBuilder('%').
	    Delimiters("(", ")").
	    AllowUndelimitedName(true).
	    Strict(true).
	    Build()

Two consecutive substitution characters always expand to a single literal
substitution character, regardless of other settings.

# Reference Resolution

At each substitution site the expander tries, in order: the escaped
substitution character, a delimited name, an undelimited name (when
enabled), and finally a bare decimal group number. Numeric scanning is
greedy: \10 refers to group 10, never group 1 followed by a literal 0.

An extracted identifier is resolved first as a group name, then as a group
index. In lenient mode (the default) an unresolved reference expands to the
empty string and malformed syntax is kept as literal text; in strict mode
both are reported as errors.

# Capture Sources

Captures is a two-method lookup interface, so any match result can back an
expansion. MapCaptures wraps literal maps, RegexpCaptures adapts a completed
regexp match, and the capstore subpackage persists capture sets for later
expansion.

# Thread Safety

An Expander is immutable after Build and safe for concurrent use. The
Builder itself is not meant to be shared across goroutines.

# Subpackages

  - config: build expanders from YAML/JSON configuration
  - capstore: capture set persistence (memory, SQLite)
  - observability: logging, metrics, and tracing for expansions
  - registry: generic registry used for named presets
*/
package refexpand
