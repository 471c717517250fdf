// Package sysuser looks up the operating system account running avance
package sysuser

import (
	"os"
	"os/user"
)

// Username returns the current OS username, falling back to $USER.
// It returns "" when neither is available.
func Username() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	return os.Getenv("USER")
}
