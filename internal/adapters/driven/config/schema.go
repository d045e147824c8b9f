package config

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

// Kind is the shape of value a key holds.
type Kind int

const (
	// Text keys hold a string.
	Text Kind = iota + 1
	// Number keys hold an integer.
	Number
	// List keys hold an array, or a comma-separated string.
	List
)

var schema = map[string]Kind{
	"mail.from":        Text,
	"mail.to":          List,
	"mail.subject":     Text,
	"smtp.host":        Text,
	"smtp.port":        Number,
	"smtp.username":    Text,
	"smtp.password":    Text,
	"smtp.encryption":  Text,
	"storage.data_dir": Text,
	"readers.order":    List,
}

// Keys returns every key the config stores accept, sorted.
func Keys() []string {
	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Check reports whether value may be stored under key.
func Check(key string, value any) error {
	kind, ok := schema[key]
	if !ok {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	switch value.(type) {
	case string:
		if kind == Text || kind == List {
			return nil
		}
	case int, int64:
		if kind == Number {
			return nil
		}
	case []string, []any:
		if kind == List {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot hold %T", domain.ErrInvalidInput, key, value)
}
