//go:build !android

package device

import "os"

// Go's time package already initializes time.Local from the system.
func detectTimezone() string {
	return ""
}

func detectLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
