// FILE: lixenwraith/ranged/config/helper.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// flattenMap converts a nested map to a flat map with dot-notation paths.
// Only map[string]any values are descended into; everything else is a leaf.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if sub, isMap := value.(map[string]any); isMap && len(sub) > 0 {
			for subPath, subValue := range flattenMap(sub, path) {
				flat[subPath] = subValue
			}
			continue
		}
		flat[path] = value
	}
	return flat
}

// checkKeys rejects keys that a dot-separated path cannot address: empty keys
// and quoted keys holding a dot, such as "a.b" in TOML. Only nested maps are
// descended into, matching flattenMap.
func checkKeys(nested map[string]any, prefix string) error {
	for key, value := range nested {
		if key == "" || strings.Contains(key, ".") {
			if prefix == "" {
				return fmt.Errorf("%w: %q at the top level", ErrInvalidKey, key)
			}
			return fmt.Errorf("%w: %q under %q", ErrInvalidKey, key, prefix)
		}
		if sub, isMap := value.(map[string]any); isMap {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			if err := checkKeys(sub, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// setNestedValue sets value in nested at a dot-notation path, creating
// intermediate maps and replacing non-map segments.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested
	for _, segment := range segments[:len(segments)-1] {
		next, isMap := current[segment].(map[string]any)
		if !isMap {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// navigateToPath returns the value at a dot-notation path, or nil.
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}
	return current
}

// isValidKeySegment checks a segment against TOML bare key rules (A-Za-z0-9_-).
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// parseValue converts env and CLI strings to bool ("true"/"false" only),
// int64 or float64 where possible. Quoted strings lose their quotes; anything else stays a string.
func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
