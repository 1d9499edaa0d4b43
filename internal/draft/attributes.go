package draft

// SetAttribute returns a copy of the attribute map with the named value
// replaced. Setting an empty value removes the key entirely; the map never
// retains stale empty entries.
func SetAttribute(attrs map[string]any, name string, value any) map[string]any {
	out := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		out[k] = v
	}
	if isEmptyValue(value) {
		delete(out, name)
	} else {
		out[name] = value
	}
	return out
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}
