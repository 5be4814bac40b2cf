package domain

import (
	"regexp"
	"strings"
)

// Base32HashLength is the length of a sha256 digest in Nix base-32 encoding.
const Base32HashLength = 52

var base32Hash = regexp.MustCompile(`^[a-z0-9]{52}$`)

// MatchBase32Hash returns the first line of out that is a canonical base-32 sha256, or "".
func MatchBase32Hash(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if base32Hash.MatchString(line) {
			return line
		}
	}
	return ""
}
