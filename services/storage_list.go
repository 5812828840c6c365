package services

import (
	"context"
	"encoding/json"
	"fmt"
)

// loadList reads a JSON array stored under key. A missing key is an empty
// list. A read failure or malformed blob returns an empty list together with
// the error so callers can report it and carry on.
func loadList[T any](ctx context.Context, kv KVStore, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return []T{}, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []T{}, fmt.Errorf("load %s: malformed data: %w", key, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// saveList overwrites key with the whole list.
func saveList[T any](ctx context.Context, kv KVStore, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("save %s: encode: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
