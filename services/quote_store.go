package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SavedQuote is a persisted quote. SelectedItems is a snapshot taken at save
// time and is never shared with a live selection.
type SavedQuote struct {
	ID            string         `json:"id"`
	ClientInfo    ClientInfo     `json:"clientInfo"`
	SelectedItems []SelectedItem `json:"selectedItems"`
	Total         float64        `json:"total"`
	CreatedAt     time.Time      `json:"createdAt"`
	QuoteNumber   string         `json:"quoteNumber"`
}

// Totals recomputes the full breakdown from the stored snapshot.
func (q SavedQuote) Totals() Calculations {
	return CalcQuoteTotals(q.SelectedItems)
}

func (q SavedQuote) clone() SavedQuote {
	q.SelectedItems = copySelectedItems(q.SelectedItems)
	return q
}

// ValidateQuoteForSave checks the fields required before a quote is saved.
func ValidateQuoteForSave(info ClientInfo, items []SelectedItem) error {
	errs := ValidationErrors{}
	if strings.TrimSpace(info.Name) == "" {
		errs.Add("name", "Informe o nome do cliente")
	}
	if len(items) == 0 {
		errs.Add("items", "Selecione ao menos um serviço")
	}
	return errs.OrNil()
}

// QuoteStore keeps the saved quotes in memory, newest first, and rewrites the
// whole list to the KVStore on every change.
type QuoteStore struct {
	mu     sync.Mutex
	kv     KVStore
	quotes []SavedQuote

	now   func() time.Time
	newID func() string
}

// NewQuoteStore loads the saved quotes from kv. If loading fails the store
// starts empty and the load error is returned alongside it.
func NewQuoteStore(ctx context.Context, kv KVStore) (*QuoteStore, error) {
	s := &QuoteStore{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
	}
	quotes, err := loadList[SavedQuote](ctx, kv, SavedQuotesKey)
	s.quotes = quotes
	return s, err
}

// List returns copies of the saved quotes, newest first.
func (s *QuoteStore) List() []SavedQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SavedQuote, len(s.quotes))
	for i, q := range s.quotes {
		out[i] = q.clone()
	}
	return out
}

// Get returns a copy of the quote with the given ID.
func (s *QuoteStore) Get(id string) (SavedQuote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.quotes {
		if q.ID == id {
			return q.clone(), true
		}
	}
	return SavedQuote{}, false
}

// Save validates and persists a snapshot of items. On a validation or
// storage error nothing changes, in memory or in the store.
func (s *QuoteStore) Save(ctx context.Context, info ClientInfo, items []SelectedItem) (SavedQuote, error) {
	if err := ValidateQuoteForSave(info, items); err != nil {
		return SavedQuote{}, err
	}

	now := s.now()
	snapshot := copySelectedItems(items)
	q := SavedQuote{
		ID:            s.newID(),
		ClientInfo:    info,
		SelectedItems: snapshot,
		Total:         CalcQuoteTotals(snapshot).Total,
		CreatedAt:     now,
		QuoteNumber:   GenerateQuoteNumber(now),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]SavedQuote, 0, len(s.quotes)+1)
	updated = append(updated, q)
	updated = append(updated, s.quotes...)

	if err := saveList(ctx, s.kv, SavedQuotesKey, updated); err != nil {
		return SavedQuote{}, err
	}
	s.quotes = updated
	return q.clone(), nil
}

// Delete removes a saved quote. Unknown IDs return ErrNotFound.
func (s *QuoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, q := range s.quotes {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	updated := make([]SavedQuote, 0, len(s.quotes)-1)
	updated = append(updated, s.quotes[:idx]...)
	updated = append(updated, s.quotes[idx+1:]...)

	if err := saveList(ctx, s.kv, SavedQuotesKey, updated); err != nil {
		return err
	}
	s.quotes = updated
	return nil
}
