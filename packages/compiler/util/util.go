package util

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var dashCaseRegexp = regexp.MustCompile(`-+([a-z0-9])`)

// DashCaseToCamelCase converts a dash-case string to camelCase
func DashCaseToCamelCase(input string) string {
	return dashCaseRegexp.ReplaceAllStringFunc(input, func(match string) string {
		parts := dashCaseRegexp.FindStringSubmatch(match)
		if len(parts) > 1 {
			return strings.ToUpper(parts[1])
		}
		return match
	})
}

// Capitalize upper-cases the first rune of input
func Capitalize(input string) string {
	r, n := utf8.DecodeRuneInString(input)
	if n == 0 {
		return input
	}
	return string(unicode.ToUpper(r)) + input[n:]
}
