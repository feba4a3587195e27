// Package ai provides model-backed text extraction for documents whose text
// layer is missing or unusable, such as scanned PDFs.
package ai

import (
	"fmt"
	"strings"
)

// Provider names a model backend.
type Provider string

const (
	ProviderOff    Provider = "off"
	ProviderGemini Provider = "gemini"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// ParseProvider accepts "", "off" and "gemini", case-insensitively.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case "", ProviderOff:
		return ProviderOff, nil
	case ProviderGemini:
		return p, nil
	default:
		return "", fmt.Errorf("unknown ai provider %q (want off or gemini)", s)
	}
}

// stripCodeFences removes a surrounding ``` block that models like to add.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
