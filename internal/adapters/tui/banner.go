package tui

import "strings"

// completionBanner is printed, gradient-colored line by line, when a session ends.
var completionBanner = []string{
	` ____                   _ `,
	`|  _ \  ___  _ __   ___| |`,
	`| | | |/ _ \| '_ \ / _ \ |`,
	`| |_| | (_) | | | |  __/_|`,
	`|____/ \___/|_| |_|\___(_)`,
}

// Banner returns the completion banner as one multi-line string.
func Banner() string {
	return strings.Join(completionBanner, "\n")
}
