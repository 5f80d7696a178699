package util

import (
	"strings"
	"unicode"
)

// ToPascalCase converts snake_case, kebab-case or camelCase to PascalCase.
// A name that is already PascalCase is returned unchanged.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			// Capitalize first letter, keep rest as-is
			runes := []rune(part)
			result.WriteRune(unicode.ToUpper(runes[0]))
			result.WriteString(string(runes[1:]))
		}
	}

	return result.String()
}

// ToCamelCase converts snake_case, kebab-case or PascalCase to camelCase
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if len(pascal) == 0 {
		return pascal
	}

	// Lowercase first letter
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
