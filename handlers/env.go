package handlers

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
)

// Env carries the shared state every handler needs.
type Env struct {
	KV       services.KVStore
	Catalog  *services.Catalog
	Bases    *services.BaseDirectory
	Quotes   *services.QuoteStore
	Flights  *services.FlightRegistry
	Clients  *services.ClientRegistry
	Sessions *QuoteSessions

	// Clipboard receives copied receipts server-side; the browser copies
	// its own.
	Clipboard services.Clipboard

	CompanyName         string
	DefaultExchangeRate string

	Now func() time.Time

	// proformaMu serialises invoice numbering.
	proformaMu sync.Mutex
}

func (env *Env) now() time.Time {
	if env.Now != nil {
		return env.Now()
	}
	return time.Now()
}

// storageError logs a persistence failure and answers with an error toast.
// A full store gets its own message; the previous state is intact either way.
func storageError(e *core.RequestEvent, op string, err error) error {
	log.Printf("%s: %v", op, err)
	if errors.Is(err, services.ErrQuotaExceeded) {
		return ErrorToast(e, http.StatusInsufficientStorage, "Espaço de armazenamento esgotado")
	}
	return ErrorToast(e, http.StatusInternalServerError, "Erro ao salvar. Tente novamente.")
}
