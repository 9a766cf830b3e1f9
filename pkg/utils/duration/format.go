// ABOUTME: Duration utilities for converting between seconds and clock notation
// ABOUTME: Handles the HH:MM:SS forms used by media duration and time offset values

package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeconds renders a second count as HH:MM:SS. Non-positive
// counts render as the empty string.
func FormatSeconds(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// ParseToSeconds converts a clock value to whole seconds. It accepts a
// bare second count, MM:SS, or HH:MM:SS, each optionally carrying a
// fractional suffix on the final component which is truncated. It
// returns 0 for anything it cannot read.
func ParseToSeconds(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0
	}

	total := 0
	for i, part := range parts {
		if i == len(parts)-1 {
			if dot := strings.IndexByte(part, '.'); dot >= 0 {
				part = part[:dot]
			}
		}
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	if total < 0 {
		return 0
	}
	return total
}
