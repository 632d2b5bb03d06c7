// Package names derives target-language identifiers from schema names.
package names

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type AccessorStyle string

const (
	// AccessorsPascal produces GetName/SetName.
	AccessorsPascal AccessorStyle = "pascal"
	// AccessorsCamel produces getName/setName.
	AccessorsCamel AccessorStyle = "camel"
)

func ParseAccessorStyle(s string) (AccessorStyle, error) {
	switch AccessorStyle(s) {
	case "", AccessorsPascal:
		return AccessorsPascal, nil
	case AccessorsCamel:
		return AccessorsCamel, nil
	}

	return "", fmt.Errorf(`unknown accessor style "%s" (expected "%s" or "%s")`, s, AccessorsPascal, AccessorsCamel)
}

// Words splits a schema name into words. Words are separated by any rune
// that is not a letter or a digit, and by lower-to-upper, acronym-to-word
// and letter-to-digit transitions. A name without lower case letters is
// treated as SCREAMING_SNAKE and its words are lower cased.
func Words(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if len(word) > 0 {
			prev := word[len(word)-1]
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}

			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsLetter(prev) && unicode.IsDigit(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && unicode.IsLower(next):
				flush()
			}
		}

		word = append(word, r)
	}
	flush()

	if !strings.ContainsFunc(s, unicode.IsLower) {
		for i := range words {
			words[i] = strings.ToLower(words[i])
		}
	}

	return words
}

// Pascal converts a name to PascalCase: my_bean_name -> MyBeanName.
func Pascal(s string) string {
	var sb strings.Builder

	for _, w := range Words(s) {
		sb.WriteString(FirstUpper(w))
	}

	return sb.String()
}

// Camel converts a name to camelCase: a_string_variable -> aStringVariable.
func Camel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))

	for _, w := range words[1:] {
		sb.WriteString(FirstUpper(w))
	}

	return sb.String()
}

// ScreamingSnake converts a name to SCREAMING_SNAKE_CASE: string1 -> STRING_1.
func ScreamingSnake(s string) string {
	words := Words(s)

	for i := range words {
		words[i] = strings.ToUpper(words[i])
	}

	return strings.Join(words, "_")
}

// Snake converts a name to snake_case: BeanWithArray -> bean_with_array.
func Snake(s string) string {
	words := Words(s)

	for i := range words {
		words[i] = strings.ToLower(words[i])
	}

	return strings.Join(words, "_")
}

// Accessors returns the getter and setter names for a field name.
func Accessors(style AccessorStyle, fieldName string) (string, string) {
	suffix := FirstUpper(strings.TrimSuffix(fieldName, "_"))

	if style == AccessorsCamel {
		return "get" + suffix, "set" + suffix
	}

	return "Get" + suffix, "Set" + suffix
}

func FirstUpper(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func FirstLower(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// StartsWithDigit reports whether an identifier would be invalid because it
// starts with a digit.
func StartsWithDigit(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsDigit(r)
}
