package environment

import (
	"strings"
)

// ToMap converts an environment variable specification from a slice of
// "KEY=value" strings to a map with equivalent contents. Entries not adhering
// to the specified format, as well as entries with empty names (which Windows
// uses for MS-DOS compatibility), are ignored. Entries are processed in order,
// meaning that the last entry seen for a key will be what populates the map.
func ToMap(environment []string) map[string]string {
	// Allocate result storage.
	result := make(map[string]string, len(environment))

	// Convert variables.
	for _, specification := range environment {
		keyValue := strings.SplitN(specification, "=", 2)
		if len(keyValue) != 2 || keyValue[0] == "" {
			continue
		}
		result[keyValue[0]] = keyValue[1]
	}

	// Done.
	return result
}
