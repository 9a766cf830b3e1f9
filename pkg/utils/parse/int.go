// ABOUTME: Utility functions for parsing numbers from strings
// ABOUTME: Provides safe parsing with default values

package parse

import "strconv"

// IntOrZero safely parses an integer from a string, returning 0 if parsing fails
func IntOrZero(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// Int64OrZero safely parses a 64-bit integer from a string, returning 0 if parsing fails
func Int64OrZero(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// FloatOrZero safely parses a float from a string, returning 0 if parsing fails
func FloatOrZero(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
