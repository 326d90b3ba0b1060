package utils

import "regexp"

var schemaNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,63}$`)

// systemSchemas are never listed by default and never droppable.
var systemSchemas = map[string]bool{
	"information_schema": true,
	"mysql":              true,
	"performance_schema": true,
	"sys":                true,
}

// IsValidSchemaName checks a name against the MySQL identifier rules this
// tool accepts: start with a letter, then letters, digits or underscores,
// 64 characters at most.
func IsValidSchemaName(name string) bool {
	return schemaNamePattern.MatchString(name)
}

// IsSystemSchema reports whether name is one of the four MySQL system
// schemas.
func IsSystemSchema(name string) bool {
	return systemSchemas[name]
}

// IsValidInstanceName mirrors container naming: lowercase letters, digits
// and dashes, no leading or trailing dash.
func IsValidInstanceName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return false
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return false
		}
	}
	return true
}

// MaskValue hides the middle of long identifiers (OCIDs, fingerprints)
// and everything of short ones.
func MaskValue(value string) string {
	if len(value) > 20 {
		return value[:10] + "..." + value[len(value)-10:]
	}
	return "***"
}

// MaskPassword truncates long generated passwords for display.
func MaskPassword(password string) string {
	if password == "" {
		return ""
	}
	return "********"
}
