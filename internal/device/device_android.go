//go:build android

package device

import (
	"os/exec"
	"strings"
	_ "time/tzdata" // Embed timezone database for Android
)

// On Android, time.Local defaults to UTC.
func detectTimezone() string {
	return getprop("persist.sys.timezone")
}

func detectLocale() string {
	if l := getprop("persist.sys.locale"); l != "" {
		return l
	}
	return getprop("ro.product.locale")
}

func getprop(name string) string {
	output, err := exec.Command("getprop", name).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
