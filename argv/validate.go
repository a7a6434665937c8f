package argv

import (
	"cmp"
	"fmt"
	"os"
	"regexp"
)

// Validators for the Check hook on scalar and list slots. Each constructor
// returns a closure matching the slot's element type, so they compose with
// the Value constructors directly:
//
//	argv.String(&path).Check(argv.ValidateFile(true))
//	argv.Int(&level).Check(argv.ValidateRange(0, 9))
//
// Messages are complete sentences ending with a period, matching the
// resolver's own error wording.

// ValidateFile checks that the value names a regular file. With mustExist
// false only the parent requirement is lifted and any non-directory path
// passes.
func ValidateFile(mustExist bool) func(string) error {
	return func(path string) error {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				if mustExist {
					return fmt.Errorf("file %q does not exist.", path)
				}
				return nil
			}
			return fmt.Errorf("cannot access %q: %v.", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%q is a directory, not a file.", path)
		}
		return nil
	}
}

// ValidateDir checks that the value names an existing directory.
func ValidateDir() func(string) error {
	return func(path string) error {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("directory %q does not exist.", path)
			}
			return fmt.Errorf("cannot access %q: %v.", path, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%q is not a directory.", path)
		}
		return nil
	}
}

// ValidateRegex checks the value against an anchored pattern. The pattern
// must compile; a malformed pattern is a programming error and panics at
// registration time rather than at parse time.
func ValidateRegex(pattern string) func(string) error {
	re := regexp.MustCompile("^(?:" + pattern + ")$")
	return func(s string) error {
		if !re.MatchString(s) {
			return fmt.Errorf("value %q does not match pattern %q.", s, pattern)
		}
		return nil
	}
}

// ValidateOneOf checks that the value is one of the listed alternatives.
func ValidateOneOf[T comparable](allowed ...T) func(T) error {
	return func(v T) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("value %v is not one of the valid values %v.", v, allowed)
	}
}

// ValidateRange checks that the value lies in the closed interval [min, max].
func ValidateRange[T cmp.Ordered](min, max T) func(T) error {
	return func(v T) error {
		if v < min || v > max {
			return fmt.Errorf("value %v is not in range [%v,%v].", v, min, max)
		}
		return nil
	}
}

// ValidateEach lifts an element validator to a whole-collection validator
// for list slots, reporting the offending element's position.
func ValidateEach[T any](fn func(T) error) func([]T) error {
	return func(vs []T) error {
		for i, v := range vs {
			if err := fn(v); err != nil {
				return fmt.Errorf("element %d: %v", i+1, err)
			}
		}
		return nil
	}
}
