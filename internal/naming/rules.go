package naming

import (
	"errors"
	"strings"
)

// ForbiddenChars are the characters no file or directory name may contain.
const ForbiddenChars = `<>:"/\|?*`

// reservedNames are device identifiers that cannot name a file on Windows.
var reservedNames = func() map[string]bool {
	m := map[string]bool{"CON": true, "PRN": true, "AUX": true, "NUL": true}
	for _, prefix := range []string{"COM", "LPT"} {
		for i := 1; i <= 9; i++ {
			m[prefix+string(rune('0'+i))] = true
		}
	}
	return m
}()

// Reasons a computed name is rejected. Returned by [CheckName].
var (
	ErrForbiddenChars = errors.New("new name contains a forbidden character")
	ErrEmptyName      = errors.New("new name is empty")
	ErrReservedName   = errors.New("new name is a reserved device name")
)

// NameRule rejects a computed name for one reason.
type NameRule struct {
	Reason error
	Reject func(name string) bool
}

// Rules is the ordered list of checks applied to every computed name.
// The first rule that rejects wins.
var Rules = []NameRule{
	{ErrForbiddenChars, HasForbiddenChars},
	{ErrEmptyName, func(name string) bool { return strings.TrimSpace(name) == "" }},
	{ErrReservedName, IsReservedName},
}

// CheckName runs [Rules] against name and returns the first rejection reason,
// or nil when the name is usable.
func CheckName(name string) error {
	for _, rule := range Rules {
		if rule.Reject(name) {
			return rule.Reason
		}
	}
	return nil
}

// HasForbiddenChars reports whether s contains any of [ForbiddenChars].
func HasForbiddenChars(s string) bool {
	return strings.ContainsAny(s, ForbiddenChars)
}

// IsReservedName reports whether the part of name before its first dot,
// trimmed and compared case-insensitively, is a reserved device name.
// "nul.tar.gz" is reserved; "my.nul" is not.
func IsReservedName(name string) bool {
	base, _, _ := strings.Cut(strings.TrimSpace(name), ".")
	return reservedNames[strings.ToUpper(base)]
}

// Substitute replaces every occurrence of original in name with
// replacement in a single left-to-right pass. The result is not scanned
// again, so a replacement containing original does not cascade.
func Substitute(name, original, replacement string) string {
	return strings.ReplaceAll(name, original, replacement)
}
