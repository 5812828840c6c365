package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// KVCollectionName is the PocketBase collection holding KVStore entries.
const KVCollectionName = "kv_store"

// PocketBaseStore is a KVStore persisted in the kv_store collection, one
// record per key.
type PocketBaseStore struct {
	app *pocketbase.PocketBase
}

// NewPocketBaseStore returns a store over app. The kv_store collection must
// already exist (see collections.Setup).
func NewPocketBaseStore(app *pocketbase.PocketBase) *PocketBaseStore {
	return &PocketBaseStore{app: app}
}

func (s *PocketBaseStore) find(key string) (*core.Record, error) {
	rec, err := s.app.FindFirstRecordByData(KVCollectionName, "key", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv lookup %s: %w", key, err)
	}
	return rec, nil
}

func (s *PocketBaseStore) Get(_ context.Context, key string) (string, bool, error) {
	rec, err := s.find(key)
	if err != nil || rec == nil {
		return "", false, err
	}
	return rec.GetString("value"), true, nil
}

func (s *PocketBaseStore) Set(_ context.Context, key, value string) error {
	rec, err := s.find(key)
	if err != nil {
		return err
	}
	if rec == nil {
		col, err := s.app.FindCollectionByNameOrId(KVCollectionName)
		if err != nil {
			return fmt.Errorf("kv collection not found: %w", err)
		}
		rec = core.NewRecord(col)
		rec.Set("key", key)
	}
	rec.Set("value", value)

	if err := s.app.Save(rec); err != nil {
		return fmt.Errorf("kv save %s: %w", key, err)
	}
	return nil
}

func (s *PocketBaseStore) Delete(_ context.Context, key string) error {
	rec, err := s.find(key)
	if err != nil || rec == nil {
		return err
	}
	if err := s.app.Delete(rec); err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}
