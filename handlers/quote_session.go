package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"aviationops/services"
)

const (
	quoteSessionCookie = "quote_session"
	quoteSessionTTL    = 24 * time.Hour
)

// QuoteSession is one browser's quote in progress. Handlers hold mu while
// reading or changing it.
type QuoteSession struct {
	mu sync.Mutex

	ID           string
	Selection    *services.Selection
	Client       services.ClientInfo
	ExchangeRate string // as typed
	Number       string

	lastSeen time.Time
}

// reset clears the selection and client data and starts a new quote number.
// The exchange rate is kept.
func (s *QuoteSession) reset(now time.Time) {
	s.Selection.Clear()
	s.Client = services.ClientInfo{Date: now.Format(time.DateOnly)}
	s.Number = services.GenerateQuoteNumber(now)
}

// QuoteSessions is the registry of live quote sessions keyed by cookie value.
type QuoteSessions struct {
	mu       sync.Mutex
	sessions map[string]*QuoteSession
	rate     string
	now      func() time.Time
}

// NewQuoteSessions returns an empty registry. New sessions start with
// defaultRate as their exchange rate.
func NewQuoteSessions(defaultRate string) *QuoteSessions {
	return &QuoteSessions{
		sessions: make(map[string]*QuoteSession),
		rate:     defaultRate,
		now:      time.Now,
	}
}

// Get returns the session for id. A blank or unknown id gets a fresh
// session; created reports whether that happened. Sessions idle longer than
// quoteSessionTTL are dropped.
func (q *QuoteSessions) Get(id string) (sess *QuoteSession, created bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	for k, s := range q.sessions {
		if now.Sub(s.lastSeen) > quoteSessionTTL {
			delete(q.sessions, k)
		}
	}

	if s, ok := q.sessions[id]; ok && id != "" {
		s.lastSeen = now
		return s, false
	}

	s := &QuoteSession{
		ID:           uuid.NewString(),
		Selection:    services.NewSelection(),
		ExchangeRate: q.rate,
		lastSeen:     now,
	}
	s.reset(now)
	q.sessions[s.ID] = s
	return s, true
}

// Len returns the number of live sessions.
func (q *QuoteSessions) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.sessions)
}
