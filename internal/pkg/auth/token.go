package auth

import (
	"regexp"
	"strings"
)

var tokenShape = regexp.MustCompile(`^[A-Za-z0-9\-_]*\.[A-Za-z0-9\-_]*\.[A-Za-z0-9\-_]*$`)

// WellFormed reports whether token has three dot-separated base64url segments.
func WellFormed(token string) bool {
	return token != "" && tokenShape.MatchString(token)
}

// SignaturePart returns the segment after the last dot, or an empty string
// when the token has fewer than two dots.
func SignaturePart(token string) string {
	if strings.Count(token, ".") < 2 {
		return ""
	}
	return token[strings.LastIndex(token, ".")+1:]
}
