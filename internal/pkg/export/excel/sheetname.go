package excel

import (
	"fmt"
	"strings"
)

// Characters xlsx does not allow in sheet names.
var invalidSheetNameChars = []string{`/`, `\`, `?`, `*`, `[`, `]`, `:`}

// SanitizeSheetName strips illegal characters and truncates the name
// to the maximum sheet-name length.
func SanitizeSheetName(name string, maxLength int) string {
	sanitized := name
	for _, c := range invalidSheetNameChars {
		sanitized = strings.ReplaceAll(sanitized, c, "_")
	}
	sanitized = strings.TrimSpace(sanitized)
	if sanitized == "" {
		sanitized = "sheet"
	}
	if maxLength > 0 && len(sanitized) > maxLength {
		sanitized = sanitized[:maxLength]
	}
	return sanitized
}

// sheetNames maps table names to unique sanitized sheet names,
// preserving the given table order.
func sheetNames(tables []string, maxLength int) map[string]string {
	used := map[string]bool{}
	names := make(map[string]string, len(tables))

	for _, table := range tables {
		name := SanitizeSheetName(table, maxLength)
		base := name
		for counter := 1; used[name]; counter++ {
			suffix := fmt.Sprintf("_%d", counter)
			cut := base
			if maxLength > 0 && len(base)+len(suffix) > maxLength {
				// Uniqueness wins over the limit when the suffix alone
				// does not fit.
				if n := maxLength - len(suffix); n > 0 {
					cut = base[:n]
				} else {
					cut = ""
				}
			}
			name = cut + suffix
		}
		used[name] = true
		names[table] = name
	}
	return names
}
