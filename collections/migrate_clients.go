package collections

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"aviationops/services"
)

// MigrateClientMasks rewrites stored clients that predate document types and
// masking: a missing type becomes CNPJ and the document and phone are stored
// masked. Safe to call on every startup -- returns early if nothing changed.
func MigrateClientMasks(ctx context.Context, kv services.KVStore) error {
	raw, ok, err := kv.Get(ctx, services.ClientsKey)
	if err != nil {
		return fmt.Errorf("migrate: could not read clients: %w", err)
	}
	if !ok || raw == "" {
		return nil
	}

	var clients []services.Client
	if err := json.Unmarshal([]byte(raw), &clients); err != nil {
		return fmt.Errorf("migrate: could not decode clients: %w", err)
	}

	changed := 0
	for i, c := range clients {
		docType := strings.ToUpper(strings.TrimSpace(c.DocumentType))
		if docType != services.DocumentCPF {
			docType = services.DocumentCNPJ
		}
		doc := services.FormatDocument(c.Document, docType)
		phone := services.FormatPhone(c.Phone)
		if docType == c.DocumentType && doc == c.Document && phone == c.Phone {
			continue
		}
		log.Printf("migrate: client %s: normalizing document %q -> %q\n", c.ID, c.Document, doc)
		clients[i].DocumentType = docType
		clients[i].Document = doc
		clients[i].Phone = phone
		changed++
	}
	if changed == 0 {
		return nil
	}

	data, err := json.Marshal(clients)
	if err != nil {
		return fmt.Errorf("migrate: could not encode clients: %w", err)
	}
	if err := kv.Set(ctx, services.ClientsKey, string(data)); err != nil {
		return fmt.Errorf("migrate: could not save clients: %w", err)
	}

	log.Printf("migrate: normalized %d client(s).\n", changed)
	return nil
}
