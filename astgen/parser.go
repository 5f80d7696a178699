package astgen

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseVariant parses one variant specification line into a VariantSpec.
//
// Grammar:
//
//	Spec      := Name (":" FieldList)?
//	FieldList := Field ("," Field)*
//	Field     := Type Identifier
//
// Whitespace is trimmed around every token, so "Binary:Expr Left,Expr Right"
// and "Binary : Expr Left, Expr Right" are equivalent. A line without a
// colon declares a unit variant with no fields. Any deviation from the
// grammar returns a *ParseError carrying the offending line.
func ParseVariant(line string) (VariantSpec, error) {
	name, fieldList, hasFields := strings.Cut(line, ":")

	name = strings.TrimSpace(name)
	if name == "" {
		return VariantSpec{}, &ParseError{
			Kind:    ErrorKindSyntax,
			Message: "missing variant name",
			Spec:    line,
		}
	}
	if !isIdentifier(name) {
		return VariantSpec{}, &ParseError{
			Kind:    ErrorKindIdentifier,
			Message: fmt.Sprintf("variant name %q is not a valid identifier", name),
			Spec:    line,
		}
	}

	variant := VariantSpec{Name: name}
	if !hasFields {
		return variant, nil
	}

	if strings.Contains(fieldList, ":") {
		return VariantSpec{}, &ParseError{
			Kind:        ErrorKindSyntax,
			Message:     "unexpected second ':'",
			Spec:        line,
			Suggestions: []string{"a variant specification has the form 'Name : Type Field, Type Field'"},
		}
	}
	if strings.TrimSpace(fieldList) == "" {
		return VariantSpec{}, &ParseError{
			Kind:        ErrorKindSyntax,
			Message:     "empty field list after ':'",
			Spec:        line,
			Suggestions: []string{"drop the ':' to declare a unit variant with no fields"},
		}
	}

	for _, entry := range strings.Split(fieldList, ",") {
		field, err := parseField(line, entry)
		if err != nil {
			return VariantSpec{}, err
		}
		variant.Fields = append(variant.Fields, field)
	}

	return variant, nil
}

// parseField parses one comma-separated field entry into a FieldSpec.
// An entry is exactly two whitespace-separated tokens: a type reference
// followed by a field name.
func parseField(line, entry string) (FieldSpec, error) {
	tokens := strings.Fields(entry)
	switch len(tokens) {
	case 0:
		return FieldSpec{}, &ParseError{
			Kind:        ErrorKindSyntax,
			Message:     "empty field entry",
			Spec:        line,
			Entry:       strings.TrimSpace(entry),
			Suggestions: []string{"remove the trailing or doubled comma"},
		}
	case 2:
		// Type Identifier
	default:
		return FieldSpec{}, &ParseError{
			Kind:        ErrorKindSyntax,
			Message:     fmt.Sprintf("expected 'Type Name', got %d tokens", len(tokens)),
			Spec:        line,
			Entry:       strings.TrimSpace(entry),
			Suggestions: []string{"each field entry is a type reference followed by a field name"},
		}
	}

	fieldType, fieldName := tokens[0], tokens[1]
	if !isIdentifier(fieldName) {
		return FieldSpec{}, &ParseError{
			Kind:    ErrorKindIdentifier,
			Message: fmt.Sprintf("field name %q is not a valid identifier", fieldName),
			Spec:    line,
			Entry:   strings.TrimSpace(entry),
		}
	}

	return FieldSpec{Type: fieldType, Name: fieldName}, nil
}

// ParseVariants parses an ordered list of variant specification lines,
// preserving input order. The first malformed line aborts the parse.
func ParseVariants(lines []string) ([]VariantSpec, error) {
	variants := make([]VariantSpec, 0, len(lines))
	for _, line := range lines {
		variant, err := ParseVariant(line)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}
	return variants, nil
}

// isIdentifier reports whether s is a valid Go identifier. Field types are
// deliberately not checked against this: qualified and slice type
// references pass through verbatim.
func isIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return s != ""
}
