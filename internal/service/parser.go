package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type ParseKind int

const (
	ParseEmpty ParseKind = iota
	ParseMalformed
	ParseValid
)

// ParseOutcome is the result of splitting one raw query. Code and Text are
// only set when Kind is ParseValid.
type ParseOutcome struct {
	Kind ParseKind
	Code string
	Text string
}

// ParseQuery splits a raw query into a lower-cased language-pair code and the
// text to translate. The text keeps its internal whitespace verbatim; only
// the outer edges of the query are trimmed.
func ParseQuery(raw string) ParseOutcome {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParseOutcome{Kind: ParseEmpty}
	}

	code, text := splitFirstField(trimmed)
	if text == "" || utf8.RuneCountInString(code) != 4 {
		return ParseOutcome{Kind: ParseMalformed}
	}

	return ParseOutcome{
		Kind: ParseValid,
		Code: strings.ToLower(code),
		Text: text,
	}
}

// splitFirstField cuts s at the first run of whitespace. The second return
// value is empty when s holds a single token.
func splitFirstField(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
