package helpers

import (
	"strings"
	"time"
)

// LastPathSegment returns the substring after the final '/' in an asset
// path. The second return is false if the text contains no '/'.
func LastPathSegment(text string) (string, bool) {
	pos := strings.LastIndexByte(text, '/')
	if pos < 0 {
		return "", false
	}
	return text[pos+1:], true
}

// Helper function to properly remove quotes from strings
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// TimestampToString converts a unix timestamp into a date & time string.
func TimestampToString(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05")
}
