package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Client is a registered operator.
type Client struct {
	ID                 string    `json:"id"`
	Operator           string    `json:"operador"`
	Document           string    `json:"documento"`
	DocumentType       string    `json:"tipoDocumento"`
	OperationalContact string    `json:"contatoOperacional"`
	Email              string    `json:"email"`
	Phone              string    `json:"telefone"`
	RegisteredAt       time.Time `json:"dataCadastro"`
}

// ClientForm is the client form as submitted (or one import row).
type ClientForm struct {
	Operator           string
	Document           string
	DocumentType       string
	OperationalContact string
	Email              string
	Phone              string
}

func (f ClientForm) normalized() ClientForm {
	f.Operator = strings.TrimSpace(f.Operator)
	f.OperationalContact = strings.TrimSpace(f.OperationalContact)
	f.Email = strings.TrimSpace(f.Email)
	f.DocumentType = strings.ToUpper(strings.TrimSpace(f.DocumentType))
	if f.DocumentType != DocumentCPF {
		f.DocumentType = DocumentCNPJ
	}
	f.Document = strings.TrimSpace(f.Document)
	f.Phone = strings.TrimSpace(f.Phone)
	return f
}

// fields returns the form keyed by the form input names.
func (f ClientForm) fields() map[string]string {
	return map[string]string{
		"operador":           f.Operator,
		"documento":          f.Document,
		"tipoDocumento":      f.DocumentType,
		"contatoOperacional": f.OperationalContact,
		"email":              f.Email,
		"telefone":           f.Phone,
	}
}

// ValidateClient checks the required fields (operator, document, email) and
// the document, phone and email formats.
func ValidateClient(f ClientForm) error {
	f = f.normalized()
	errs := ValidationErrors{}
	if f.Operator == "" {
		errs.Add("operador", "Operador é obrigatório")
	}
	if f.Document == "" {
		errs.Add("documento", f.DocumentType+" é obrigatório")
	}
	if f.Email == "" {
		errs.Add("email", "E-mail é obrigatório")
	}
	for field, msg := range ValidateClientFormat(f.fields()) {
		errs.Add(field, msg)
	}
	return errs.OrNil()
}

// ClientRegistry keeps the registered clients in insertion order and
// rewrites the whole list to the KVStore on every change.
type ClientRegistry struct {
	mu      sync.Mutex
	kv      KVStore
	clients []Client

	now func() time.Time
}

// NewClientRegistry loads the clients from kv. If loading fails the registry
// starts empty and the load error is returned alongside it.
func NewClientRegistry(ctx context.Context, kv KVStore) (*ClientRegistry, error) {
	r := &ClientRegistry{kv: kv, now: time.Now}
	clients, err := loadList[Client](ctx, kv, ClientsKey)
	r.clients = clients
	return r, err
}

// List returns the clients in registration order.
func (r *ClientRegistry) List() []Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Client(nil), r.clients...)
}

// Len returns the number of registered clients.
func (r *ClientRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Search matches term case-insensitively against operator and ID, and as a
// plain substring against the document. An empty term matches everything.
func (r *ClientRegistry) Search(term string) []Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(term)
	var out []Client
	for _, c := range r.clients {
		if strings.Contains(strings.ToLower(c.Operator), lower) ||
			strings.Contains(strings.ToLower(c.ID), lower) ||
			strings.Contains(c.Document, term) {
			out = append(out, c)
		}
	}
	return out
}

// Add validates and registers a client.
func (r *ClientRegistry) Add(ctx context.Context, f ClientForm) (Client, error) {
	added, err := r.AddAll(ctx, []ClientForm{f})
	if err != nil {
		return Client{}, err
	}
	return added[0], nil
}

// AddAll validates and registers several clients with a single write. Any
// invalid form rejects the whole batch.
func (r *ClientRegistry) AddAll(ctx context.Context, forms []ClientForm) ([]Client, error) {
	for i, f := range forms {
		if err := ValidateClient(f); err != nil {
			if len(forms) > 1 {
				return nil, fmt.Errorf("client %d: %w", i+1, err)
			}
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := append([]Client(nil), r.clients...)
	added := make([]Client, 0, len(forms))
	for _, f := range forms {
		f = f.normalized()
		c := Client{
			ID:                 nextClientID(updated),
			Operator:           f.Operator,
			Document:           FormatDocument(f.Document, f.DocumentType),
			DocumentType:       f.DocumentType,
			OperationalContact: f.OperationalContact,
			Email:              f.Email,
			Phone:              FormatPhone(f.Phone),
			RegisteredAt:       r.now(),
		}
		updated = append(updated, c)
		added = append(added, c)
	}

	if err := saveList(ctx, r.kv, ClientsKey, updated); err != nil {
		return nil, err
	}
	r.clients = updated
	return added, nil
}

// Delete removes a client. Unknown IDs return ErrNotFound.
func (r *ClientRegistry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]Client, 0, len(r.clients))
	for _, c := range r.clients {
		if c.ID != id {
			updated = append(updated, c)
		}
	}
	if len(updated) == len(r.clients) {
		return ErrNotFound
	}

	if err := saveList(ctx, r.kv, ClientsKey, updated); err != nil {
		return err
	}
	r.clients = updated
	return nil
}

// nextClientID numbers clients by count+1, skipping IDs still taken after
// earlier deletions.
func nextClientID(clients []Client) string {
	taken := make(map[string]bool, len(clients))
	for _, c := range clients {
		taken[c.ID] = true
	}
	for n := len(clients) + 1; ; n++ {
		id := fmt.Sprintf("CLI-%05d", n)
		if !taken[id] {
			return id
		}
	}
}
