package bsncloud

import "math"

// truncatePreview returns a truncated string for error messages.
func truncatePreview(data []byte) string {
	s := string(data)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}

// GetString navigates a nested map and returns a string value.
// Returns the value and true if found, or empty string and false if not.
//
// Example:
//
//	// Extract: result["data"]["result"]["value"]
//	recoveryURL, ok := GetString(result, "data", "result", "value")
func GetString(data map[string]any, keys ...string) (string, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// GetInt navigates a nested map and returns an int value.
// Handles JSON's float64 representation of numbers.
// Returns false if the value is outside the valid int range.
//
// Example:
//
//	// Extract: result["data"]["result"]["brightness"]
//	brightness, ok := GetInt(result, "data", "result", "brightness")
func GetInt(data map[string]any, keys ...string) (int, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		if v > float64(math.MaxInt) || v < float64(math.MinInt) || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case int64:
		if v > int64(math.MaxInt) || v < int64(math.MinInt) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// GetFloat navigates a nested map and returns a float64 value.
func GetFloat(data map[string]any, keys ...string) (float64, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetBool navigates a nested map and returns a bool value.
//
// Example:
//
//	// Extract: result["data"]["result"]["enabled"]
//	enabled, ok := GetBool(result, "data", "result", "enabled")
func GetBool(data map[string]any, keys ...string) (bool, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// GetMap navigates a nested map and returns a map[string]any value.
func GetMap(data map[string]any, keys ...string) (map[string]any, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return nil, false
	}
	m, ok := val.(map[string]any)
	return m, ok
}

// GetArray navigates a nested map and returns a []any value.
//
// Example:
//
//	// Extract: result["data"]["result"] (list of video modes)
//	modes, ok := GetArray(result, "data", "result")
func GetArray(data map[string]any, keys ...string) ([]any, bool) {
	val, ok := navigate(data, keys)
	if !ok {
		return nil, false
	}
	arr, ok := val.([]any)
	return arr, ok
}

// navigate walks through a nested map following the provided keys.
// Returns the final value and true if successful, or nil and false if any
// key is missing.
func navigate(data map[string]any, keys []string) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	var current any = data
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
