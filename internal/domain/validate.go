package domain

import "strings"

// Rule is an optional constraint set for Valid. Absent (nil) constraints are
// unconstrained dimensions, not failures. MinLength and MaxLength apply only
// to string values; Min and Max apply only to numeric values.
type Rule struct {
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *int
	Max       *int
}

// Valid reports whether value satisfies every constraint present in rule.
// All present constraints must hold (logical AND). Length and range bounds
// use strict comparisons: a string is valid only if its length is strictly
// greater than MinLength and strictly less than MaxLength, and likewise a
// number must be strictly between Min and Max.
//
// Valid is pure and safe to call any number of times.
func Valid(value any, rule Rule) bool {
	ok := true

	if rule.Required {
		ok = ok && !isEmpty(value)
	}

	switch v := value.(type) {
	case string:
		if rule.MinLength != nil {
			ok = ok && len(v) > *rule.MinLength
		}
		if rule.MaxLength != nil {
			ok = ok && len(v) < *rule.MaxLength
		}
	case int:
		if rule.Min != nil {
			ok = ok && v > *rule.Min
		}
		if rule.Max != nil {
			ok = ok && v < *rule.Max
		}
	}

	return ok
}

// isEmpty reports whether a value fails the Required constraint:
// a blank string, or a zero for numeric values.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case int:
		return v == 0
	default:
		return value == nil
	}
}
