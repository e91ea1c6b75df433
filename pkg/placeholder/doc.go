// Package placeholder implements the flat {{name}} token substitution used in
// email subjects and bodies. It is deliberately not a templating language:
// there are no conditionals, loops, or nested expressions, only exhaustive
// single-pass replacement of named tokens.
package placeholder
