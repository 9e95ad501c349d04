package view

import "slices"

type config struct {
	strict   bool
	mutable  bool
	prefixes []string
}

func defaultConfig() config {
	return config{mutable: true}
}

type Option func(*config)

// Strict makes field writes require that the new value's kind equal the
// kind of the value currently stored (numbers additionally match on
// int-vs-float). Off by default.
func Strict(v bool) Option {
	return func(c *config) { c.strict = v }
}

// Mutable controls whether mutation through the view is permitted. On by
// default. Immutability is a view-level restriction: the same underlying
// structure may be wrapped again with Mutable(true) and mutated through
// that second view.
func Mutable(v bool) Option {
	return func(c *config) { c.mutable = v }
}

// KeyPrefixes configures literal prefixes tried, in order, when resolving
// a field name to an underlying key. The bare name is tried after all
// prefixes.
func KeyPrefixes(ps ...string) Option {
	return func(c *config) { c.prefixes = slices.Clone(ps) }
}
