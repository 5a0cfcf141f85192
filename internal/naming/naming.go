// Package naming validates partition and property identifiers.
package naming

import (
	"fmt"
	"regexp"
)

// MaxLength is the maximum identifier length in bytes.
const MaxLength = 255

var ident = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reserved names are claimed by the library for diagnostics and
// introspection output.
var reserved = map[string]struct{}{
	"buffer":    {},
	"partition": {},
	"schema":    {},
	"sparse":    {},
	"tag":       {},
}

// Validate reports whether name is a usable identifier.
// Identifiers must be 1..255 bytes, match [A-Za-z_][A-Za-z0-9_]*,
// and not collide with a reserved name.
func Validate(name string) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	if len(name) > MaxLength {
		return fmt.Errorf("name exceeds %d bytes: %d", MaxLength, len(name))
	}
	if !ident.MatchString(name) {
		return fmt.Errorf("name %q contains invalid characters", name)
	}
	if _, ok := reserved[name]; ok {
		return fmt.Errorf("name %q is reserved", name)
	}
	return nil
}
