package rules

import (
	"fmt"
	"strconv"
	"strings"
)

/*
 * Scalar coercion and comparison for rule evaluation.
 *
 * Dataset cells arrive as float64, string, bool, or nil. Constraint checks
 * coerce per value rather than per column, so a mixed column degrades into
 * per-value validity failures instead of aborting the rule.
 *
 * Numeric mode is strict: numeric strings are accepted after trimming,
 * booleans are rejected (avoids true == 1 ambiguity). Text mode is lenient:
 * every type stringifies. Equality is numeric-tolerant so 1 and 1.0 compare
 * equal regardless of source representation.
 */

// toFloat64 converts a value to float64 for numeric comparison.
// Accepts float64, int, int64, and numeric strings. Rejects booleans and
// whitespace-only strings.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// toString converts any scalar to its string representation.
func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// equal performs equality comparison with numeric type mixing.
func equal(a, b any) bool {
	na, oka := numeric(a)
	nb, okb := numeric(b)
	if oka && okb {
		return na == nb
	}
	return a == b
}

// numeric converts native numeric types only; unlike toFloat64 it does not
// parse strings, so "1" stays distinct from 1 in allowed-value sets.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// inSet checks membership using equality semantics.
func inSet(v any, set []any) bool {
	for _, elem := range set {
		if equal(v, elem) {
			return true
		}
	}
	return false
}

// distinctKey normalizes a value for distinct counting so numerically equal
// values collapse to one key independent of their Go type.
func distinctKey(v any) any {
	if n, ok := numeric(v); ok {
		return n
	}
	return v
}
