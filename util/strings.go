// Package util provides small helpers shared by the dramkit tools.
package util

import "strings"

// StringSplit splits s at every delim and drops the empty items, so repeated
// delimiters behave like one.
func StringSplit(s string, delim rune) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == delim
	})
}
