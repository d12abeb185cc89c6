// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     stringx
// Description: String helpers shared by sanitizer, validator and assembler
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package stringx

import (
	"reflect"
	"regexp"
	"unicode/utf8"
)

// Reverse reverses a string while preserving Unicode characters.
// This function properly handles multi-byte UTF-8 characters.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Length returns the number of runes in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// LengthWithinBounds reports whether the rune length of s lies within [minLen, maxLen].
// A bound of zero or less is treated as absent and does not constrain that side.
func LengthWithinBounds(s string, minLen, maxLen int) bool {
	length := utf8.RuneCountInString(s)

	if minLen > 0 && length < minLen {
		return false
	}
	if maxLen > 0 && length > maxLen {
		return false
	}
	return true
}

// SanitizeByPattern removes every match of disallowed from s.
// A nil pattern returns s unchanged.
func SanitizeByPattern(s string, disallowed *regexp.Regexp) string {
	if disallowed == nil || s == "" {
		return s
	}
	return disallowed.ReplaceAllString(s, "")
}

// Fallback returns value unless it is empty in the sense of IsNullOrEmpty,
// otherwise the default value
func Fallback[T any](value, defaultValue T) T {
	if IsNullOrEmpty(value) {
		return defaultValue
	}
	return value
}

// IsNullOrEmpty checks if a value is nil or considered empty based on its type.
// Numbers and booleans are never empty; a zero latitude is still a value.
func IsNullOrEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsNullOrEmpty(rv.Elem().Interface())
	default:
		return false
	}
}

// AssignIfNonEmpty sets record[key] = value unless value is empty.
// It reports whether the key was written.
func AssignIfNonEmpty(record map[string]any, key string, value any) bool {
	if record == nil || IsNullOrEmpty(value) {
		return false
	}
	record[key] = value
	return true
}

// Ptr returns a pointer to s. Handy for optional fields.
func Ptr(s string) *string {
	return &s
}
