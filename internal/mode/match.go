package mode

import (
	"github.com/bmatcuk/doublestar/v4"
)

// matchWildcard checks if a path matches a wildcard pattern via doublestar.
// A bare "*" means unrestricted and matches across path separators, which
// doublestar's single star does not.
func matchWildcard(pattern, s string) bool {
	if pattern == "*" {
		return true
	}
	matched, _ := doublestar.Match(pattern, s)
	return matched
}
