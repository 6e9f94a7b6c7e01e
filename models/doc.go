package models

import (
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

// Stored documents come back from the JSON backends with generic value
// types; these helpers coerce them when decoding entities.

func docString(doc store.Document, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docInt(doc store.Document, key string) int {
	switch v := doc[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func docStrings(doc store.Document, key string) []string {
	switch v := doc[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
