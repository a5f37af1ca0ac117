package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/randalmurphal/refexpand/pkg/refexpand"
)

// Expander builds an expander from configuration.
//
// When a "preset" key is present it is resolved through the preset
// registry and supplies the base syntax; any further keys override it.
// Without a preset the base is a '$' expander with no delimiters,
// undelimited names disallowed, and lenient error handling.
//
// Example:
//
//	cfg, err := config.FromYAML([]byte("preset: python\nstrict: true"))
//	if err != nil { ... }
//	exp, err := config.Expander(cfg)
func Expander(cfg Config) (*refexpand.Expander, error) {
	subChar := '$'
	var open, close string
	allowUndelimited := false
	strict := false

	if name := cfg.String("preset", ""); name != "" {
		base, ok := refexpand.Preset(name)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %q", name)
		}
		subChar = base.SubChar()
		open, close, _ = base.Delimiters()
		allowUndelimited = base.AllowUndelimitedName()
		strict = base.Strict()
	}

	if s := cfg.String("sub_char", ""); s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if size != len(s) {
			return nil, fmt.Errorf("sub_char must be a single character, got %q", s)
		}
		subChar = r
	}
	if s := cfg.String("open", ""); s != "" {
		open = s
	}
	if s := cfg.String("close", ""); s != "" {
		close = s
	}
	if (open == "") != (close == "") {
		return nil, fmt.Errorf("delimiters require both open and close")
	}
	allowUndelimited = cfg.Bool("allow_undelimited_name", allowUndelimited)
	strict = cfg.Bool("strict", strict)

	b := refexpand.NewBuilder(subChar).
		AllowUndelimitedName(allowUndelimited).
		Strict(strict)
	if open != "" {
		b = b.Delimiters(open, close)
	}
	return b.Build(), nil
}

// ExpanderFromFile loads a configuration file and builds an expander
// from it.
func ExpanderFromFile(path string) (*refexpand.Expander, error) {
	cfg, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	return Expander(cfg)
}
