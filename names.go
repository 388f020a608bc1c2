package crontime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Numerise replaces every name from spec's table that appears in text with
// its number, one leftmost occurrence at a time until none remain. A name
// only matches as a whole alphabetic word, so "jan" is replaced in
// "jan-mar" but not in "january". Text is returned unchanged when spec has
// no name table.
func Numerise(spec *FieldSpec, text string) string {
	if spec == nil || len(spec.names) == 0 {
		return text
	}
	for {
		start, end, value, ok := spec.findName(text)
		if !ok {
			return text
		}
		text = text[:start] + strconv.Itoa(value) + text[end:]
	}
}

// findName locates the leftmost alphabetic word in text that is a known name.
func (s *FieldSpec) findName(text string) (start, end, value int, ok bool) {
	for i := 0; i < len(text); {
		if !isWordByte(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isWordByte(text[j]) {
			j++
		}
		if v, found := s.names[strings.ToLower(text[i:j])]; found {
			return i, j, v, true
		}
		i = j
	}
	return 0, 0, 0, false
}

// isWordByte reports whether b can be part of an alphabetic word. Bytes of
// multi-byte UTF-8 sequences count, so a name glued to a non-ASCII letter
// is not split out of it.
func isWordByte(b byte) bool {
	return isAlpha(b) || b >= utf8.RuneSelf
}

// resolveValue turns a query value (number, numeric string or name) into an
// integer for this spec. Negative values resolve, so that the caller can
// reject them as out of range.
func (s *FieldSpec) resolveValue(value any) (int, error) {
	text, err := valueText(value)
	if err != nil {
		return 0, TimeError(fmt.Sprintf("invalid time for comparison: %v", err))
	}
	return s.resolve(text, true)
}

// resolveText resolves one word of a tuple query; only unsigned digits are
// accepted.
func (s *FieldSpec) resolveText(text string) (int, error) {
	return s.resolve(text, false)
}

func (s *FieldSpec) resolve(text string, signed bool) (int, error) {
	text = strings.TrimSpace(Numerise(s, text))
	digits := text
	if signed {
		digits = strings.TrimPrefix(text, "-")
	}
	if !isNumeric(digits) {
		return 0, TimeError(fmt.Sprintf("invalid time for comparison: %q is not numeric for %s field", text, s.name))
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, TimeError(fmt.Sprintf("invalid time for comparison: %q overflows", text))
	}
	return n, nil
}
