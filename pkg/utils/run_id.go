package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateRunID creates a short, human-readable id for one evaluation run.
// Format: {operation}-{slug}-{8charHexUUID}
//
// Example:
//   - Input: operation="empire", subject="Moria Fuel Chain"
//   - Output: "empire-moria-fuel-chain-a3f8e2b1"
//
// An empty subject is omitted.
func GenerateRunID(operation, subject string) string {
	parts := []string{operation}
	if slug := slugify(subject); slug != "" {
		parts = append(parts, slug)
	}
	parts = append(parts, generateShortUUID())
	return strings.Join(parts, "-")
}

// slugify lowercases s and collapses every run of non-alphanumerics to a hyphen
func slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
