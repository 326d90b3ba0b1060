package oci

import "strings"

// ParseConfigText extracts key=value pairs from a pasted OCI config file.
// The file is INI-flavored; section headers and comments are skipped.
func ParseConfigText(lines []string) map[string]string {
	values := make(map[string]string)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values
}

// IsPlaceholderKeyPath reports whether the key_file value is still the
// console's placeholder text.
func IsPlaceholderKeyPath(value string) bool {
	return strings.Contains(value, "<path to your private keyfile>") || strings.Contains(value, "TODO")
}

// ReplaceConfigValue rewrites a single key's value in the raw config text,
// preserving everything else byte for byte.
func ReplaceConfigValue(raw, key, newValue string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		k, _, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(k) == key {
			lines[i] = key + "=" + newValue
		}
	}
	return strings.Join(lines, "\n")
}
