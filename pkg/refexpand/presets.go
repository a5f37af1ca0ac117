package refexpand

import "github.com/randalmurphal/refexpand/pkg/refexpand/registry"

// Default returns an expander using shell-style interpolation syntax:
// substitution character '$', delimiters "{" and "}", undelimited names
// allowed, lenient error handling.
//
// Both ${name} and $name resolve the group name (or number), and $1
// resolves group 1. $$ emits a literal '$'.
func Default() *Expander {
	return NewBuilder('$').
		Delimiters("{", "}").
		AllowUndelimitedName(true).
		Build()
}

// Python returns an expander using Python-compatible backreference syntax:
// substitution character '\', delimiters "g<" and ">", undelimited names
// disallowed, lenient error handling.
//
// \num resolves the numbered group num and \g<name> resolves the group
// name (or number). The longest possible number is used: \10 looks up
// group 10, not group 1 followed by a literal 0. \\ emits a literal '\'.
func Python() *Expander {
	return NewBuilder('\\').
		Delimiters("g<", ">").
		AllowUndelimitedName(false).
		Build()
}

// presets maps preset names to expander constructors. Constructors are
// registered rather than values so each caller gets its own Expander.
var presets = registry.New[string, func() *Expander]()

func init() {
	presets.RegisterMany(map[string]func() *Expander{
		"default": Default,
		"python":  Python,
	})
}

// Preset returns a new expander for a named preset and whether the name
// is registered. Built-in names are "default" and "python".
func Preset(name string) (*Expander, bool) {
	fn, ok := presets.Get(name)
	if !ok {
		return nil, false
	}
	return fn(), true
}

// RegisterPreset makes a custom expander constructor resolvable by name
// through Preset, for example from configuration files.
// Registering an existing name overwrites it.
func RegisterPreset(name string, fn func() *Expander) {
	presets.Register(name, fn)
}

// Presets returns the registered preset names in no particular order.
func Presets() []string {
	return presets.Keys()
}
