package scan

import "regexp"

// Constant names are SCREAMING_SNAKE_CASE: an uppercase first segment,
// optional underscore-separated segments, digits allowed after the first
// character. No leading or trailing underscore.
var constantNameRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)

// IsValidConstantName reports whether name follows the constant-naming
// convention. Exposed as a standalone predicate so callers can pre-validate
// before invoking extract-constant.
func IsValidConstantName(name string) bool {
	return constantNameRe.MatchString(name)
}
