package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExceptionSet holds lower-case words kept in lower case inside place names
type ExceptionSet map[string]struct{}

// NewExceptionSet builds a set from words, lower-casing each member
func NewExceptionSet(words ...string) ExceptionSet {
	lower := cases.Lower(language.BrazilianPortuguese)
	set := make(ExceptionSet, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		set[lower.String(word)] = struct{}{}
	}
	return set
}

// DefaultExceptions returns the Portuguese connectives {de, da, do, dos, das, e}
func DefaultExceptions() ExceptionSet {
	return NewExceptionSet("de", "da", "do", "dos", "das", "e")
}

// Contains reports whether the lower-cased word is in the set
func (s ExceptionSet) Contains(word string) bool {
	_, ok := s[cases.Lower(language.BrazilianPortuguese).String(word)]
	return ok
}

// Words returns the members of the set in no particular order
func (s ExceptionSet) Words() []string {
	words := make([]string, 0, len(s))
	for word := range s {
		words = append(words, word)
	}
	return words
}

// PlaceName capitalizes a place name cell. A nil cell passes through.
func PlaceName(name *string, exceptions ExceptionSet) *string {
	if name == nil {
		return nil
	}
	formatted := FormatPlaceName(*name, exceptions)
	return &formatted
}

// FormatPlaceName splits name on whitespace and capitalizes every token
// except the connectives in exceptions. The first token is always
// capitalized. Tokens are rejoined with single spaces.
func FormatPlaceName(name string, exceptions ExceptionSet) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return ""
	}

	upper := cases.Upper(language.BrazilianPortuguese)
	lower := cases.Lower(language.BrazilianPortuguese)

	for i, token := range tokens {
		lowered := lower.String(token)
		if i > 0 && exceptions.Contains(lowered) {
			tokens[i] = lowered
			continue
		}
		tokens[i] = capitalize(lowered, upper)
	}

	return strings.Join(tokens, " ")
}

// capitalize upper-cases the first rune of an already lower-cased token
func capitalize(token string, upper cases.Caser) string {
	_, size := utf8.DecodeRuneInString(token)
	if size == 0 {
		return token
	}
	return upper.String(token[:size]) + token[size:]
}
