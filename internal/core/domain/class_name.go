package domain

import (
	"strings"
	"unique"
)

// NestingSeparator is the marker the JVM uses inside binary class names to
// denote inner, nested and anonymous classes (e.g. "com.example.Foo$Inner").
const NestingSeparator = "$"

// ClassName is a value object identifying a JVM class by its binary name.
// It wraps a unique.Handle[string] so that the many repeated occurrences of
// the same name across graph edges share one allocation and compare in O(1).
type ClassName struct {
	h unique.Handle[string]
}

// NewClassName creates a ClassName from a binary class name string.
func NewClassName(s string) ClassName {
	return ClassName{
		h: unique.Make(s),
	}
}

// String returns the underlying binary class name.
func (c ClassName) String() string {
	var zero unique.Handle[string]
	if c.h == zero {
		return ""
	}
	return c.h.Value()
}

// IsNested reports whether the binary name denotes an inner, nested or
// anonymous class. This is a convention over binary naming: any name
// containing the nesting separator is treated as non-actionable for
// recompilation, because only its enclosing top-level class maps to a
// compilation unit.
func (c ClassName) IsNested() bool {
	return strings.Contains(c.String(), NestingSeparator)
}

// TopLevel returns the enclosing top-level class name. For a top-level class
// it returns the receiver unchanged.
func (c ClassName) TopLevel() ClassName {
	name := c.String()
	idx := strings.Index(name, NestingSeparator)
	if idx < 0 {
		return c
	}
	return NewClassName(name[:idx])
}

// MarshalText implements encoding.TextMarshaler.
func (c ClassName) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ClassName) UnmarshalText(text []byte) error {
	c.h = unique.Make(string(text))
	return nil
}
