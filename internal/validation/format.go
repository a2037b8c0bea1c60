package validation

import (
	"fmt"
	"strings"
)

// FormatAlloys joins alloy grades for display, collapsing the tail after
// maxItems into "и еще N".
func FormatAlloys(alloys []string, maxItems int) string {
	if maxItems < 0 {
		maxItems = 0
	}
	if len(alloys) <= maxItems {
		return strings.Join(alloys, ", ")
	}
	return fmt.Sprintf("%s и еще %d", strings.Join(alloys[:maxItems], ", "), len(alloys)-maxItems)
}

// Truncate cuts text to maxLength runes and appends "...".
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength < 0 {
		maxLength = 0
	}
	return string(runes[:maxLength]) + "..."
}
