// Package user resolves the name recorded as the author of block changes.
package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvUser overrides the detected username when set.
const EnvUser = "BOARD_USER"

// GetCurrentUsername returns the name recorded on blocks and unblocks.
// It tries multiple methods with fallbacks:
// 1. BOARD_USER environment variable - explicit override
// 2. user.Current() - most reliable, gets username from OS
// 3. USER environment variable - fallback for restricted environments
// 4. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	if name := strings.TrimSpace(os.Getenv(EnvUser)); name != "" {
		return name
	}

	// Try to get current user from OS
	currentUser, err := user.Current()
	if err != nil || currentUser.Username == "" {
		// Fallback to USER environment variable
		username := os.Getenv("USER")
		if username == "" {
			// Final fallback
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
