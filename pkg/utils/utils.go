package utils

import (
	"fmt"
	"strings"
)

func TruncateString(str string, num int) string {
	if len(str) <= num {
		return str
	}
	if num <= 3 {
		return str[:num]
	}
	return str[0:num-3] + "..."
}

// ShortenMiddle keeps the first head and last tail characters of s joined
// by an ellipsis when s is longer than limit.
func ShortenMiddle(s string, limit, head, tail int) string {
	r := []rune(s)
	if len(r) <= limit || head+tail >= len(r) {
		return s
	}
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}

// MaskDigits replaces every ASCII digit with 'X'. Everything else, including
// punctuation and currency symbols, is left alone.
func MaskDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return 'X'
		}
		return r
	}, s)
}

// SplitLines splits command output into display lines. A trailing newline
// does not produce an empty last line.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// FormatUptime renders seconds as days+hours, hours+minutes or minutes.
func FormatUptime(seconds uint64) string {
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%d day(s) %d hour(s)", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%d hour(s) %d minute(s)", hours, minutes%60)
	default:
		return fmt.Sprintf("%d minute(s)", minutes)
	}
}
