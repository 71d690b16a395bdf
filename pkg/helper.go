package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// CategoryLabel turns a stored category key into a display name,
// e.g. "system_design" -> "System Design".
func CategoryLabel(category string) string {
	parts := strings.Split(category, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// FormatMinutes renders a minute total as "XhYm" for the dashboard.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// NewShareToken returns a 32-char hex capability token.
func NewShareToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Round1 rounds to one decimal place, the precision scores are stored at.
func Round1(v float64) float64 {
	if v < 0 {
		return float64(int(v*10-0.5)) / 10
	}
	return float64(int(v*10+0.5)) / 10
}
