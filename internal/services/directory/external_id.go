package directory

import (
	"regexp"
	"strings"
)

var externalIDPattern = regexp.MustCompile(`^(\d{8}|\d{4}-\d{4})$`)

// NormalizeExternalID validates a player ID typed by a user and strips the
// optional hyphen. Returns false when the ID is not 8 digits.
func NormalizeExternalID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !externalIDPattern.MatchString(raw) {
		return "", false
	}
	return strings.ReplaceAll(raw, "-", ""), true
}
