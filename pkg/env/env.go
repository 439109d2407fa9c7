// Package env reads deployment-injected variables that live outside the
// DREVMART_ config prefix, such as the PORT the platform assigns.
package env

import "os"

// Get returns the value of the given environment variable or a fallback.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
