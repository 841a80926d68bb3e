package scan

import "regexp"

// Structural detection regexes. Confidence reflects pattern specificity:
// command syntax is near-unambiguous, bare word stems much less so.
var defaultPatterns = []Pattern{
	{"command_syntax", regexp.MustCompile(`\.p/[a-z]+\.[a-z]+\{[^}]*\}`), 0.95},
	{"shell_reference", regexp.MustCompile(`v[0-9]+\.[A-Z-]+`), 0.9},
	{"self_reference", regexp.MustCompile(`(?i)\bself[-\s]refer[a-z]*\b`), 0.8},
	{"meta_reflection", regexp.MustCompile(`(?i)\b(?:meta[-\s]?cognition|thinking about thinking|self[-\s]aware[a-z]*)\b`), 0.75},
	{"loop_structure", regexp.MustCompile(`(?i)\b(?:loop[a-z]*|circular[a-z]*|iterat[a-z]*)\b`), 0.6},
}

// DefaultPatterns returns the built-in structural patterns.
func DefaultPatterns() []Pattern {
	return append([]Pattern(nil), defaultPatterns...)
}
