// Package config builds expanders from configuration files.
//
// Configuration is a flat map with the keys:
//
//	preset:                 default | python | any registered preset
//	sub_char:               single character introducing a substitution
//	open, close:            delimiter pair (both or neither)
//	allow_undelimited_name: bool
//	strict:                 bool
//
// A preset supplies the base syntax; the remaining keys override it.
// Without a preset, the base is '$' with no delimiters, undelimited names
// disallowed, lenient.
package config

// Config wraps a map[string]any for type-safe value extraction.
// Accessor methods return default values if the key is missing or the
// value cannot be converted to the requested type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or
// not a string.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or
// not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// Has returns true if the key is present.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}
