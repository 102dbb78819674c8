package util

import (
	"github.com/dchest/uniuri"
)

// GenerateSecret produces a webhook signing secret. Secrets are always
// generated, never derived from user input.
func GenerateSecret() string {
	return uniuri.NewLen(43)
}

// TruncateSecret is the only form in which a webhook secret may leave
// the signature-verification path.
func TruncateSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}

	return s[:4] + "****" + s[len(s)-4:]
}
