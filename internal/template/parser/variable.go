package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Variables resolves dotted paths such as "variations.control.id".
type Variables interface {
	// Get retrieves a value by dotted path.
	// Returns (value, true) if found, (nil, false) if not found.
	Get(path string) (interface{}, bool)
}

// TreeVariables resolves paths against a nested map.
type TreeVariables struct {
	tree map[string]interface{}
}

// NewTreeVariables wraps a nested map of template variables.
func NewTreeVariables(tree map[string]interface{}) *TreeVariables {
	if tree == nil {
		tree = make(map[string]interface{})
	}
	return &TreeVariables{tree: tree}
}

// Get walks the tree one segment at a time. Numeric segments index slices.
func (t *TreeVariables) Get(path string) (interface{}, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}
	return Lookup(t.tree, strings.Split(path, "."))
}

// Lookup resolves segments against nested maps and slices.
func Lookup(node interface{}, segments []string) (interface{}, bool) {
	current := node
	for _, seg := range segments {
		switch v := current.(type) {
		case map[string]interface{}:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			current = next
		case []interface{}:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			current = v[i]
		case []map[string]interface{}:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			current = v[i]
		default:
			return nil, false
		}
	}
	return current, true
}

// valueToString renders a resolved value the way it appears in generated files.
func valueToString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = valueToString(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
