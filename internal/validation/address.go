package validation

import "regexp"

var (
	addressPattern  = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	embeddedPattern = regexp.MustCompile(`0x[0-9a-fA-F]{40}`)
)

// IsValidAddress reports whether s is a 0x-prefixed 40-hex-char address.
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// FindAddress returns the first address-shaped substring embedded anywhere
// in s, or "" when none exists. Used as the decoder's last-resort step.
func FindAddress(s string) string {
	return embeddedPattern.FindString(s)
}
