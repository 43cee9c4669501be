package royale

import "strings"

// NormalizeTag canonicalizes a player or clan tag the way the upstream API
// expects it: surrounding whitespace and a leading '#' are removed, letters
// are uppercased, and the letter O is mapped to the digit 0 (the tag
// alphabet has no O). Normalization is idempotent.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimLeft(tag, "#")
	tag = strings.ToUpper(tag)
	return strings.ReplaceAll(tag, "O", "0")
}
