// Package config holds what the config store adapters share: settings kept
// under dot-notation keys ("smtp.port") and the conversions applied on read.
package config

import "strings"

// Values maps dot-notation keys to raw values as they were decoded or set.
// TOML gives int64 for integers and []any for arrays; callers may also store
// int and []string directly.
type Values map[string]any

// String returns the value at key, or "" when it is missing or not a string.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Int returns the value at key, or 0 when it is missing or not a number.
func (v Values) Int(key string) int {
	switch n := v[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// StringSlice returns the list at key. A string is read as a comma-separated
// list and non-string array items are skipped. Missing keys give nil.
func (v Values) StringSlice(key string) []string {
	switch list := v[key].(type) {
	case []string:
		return list
	case string:
		return SplitList(list)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// SplitList splits a comma-separated value, trimming items and dropping
// empty ones.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
