package services

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const proformaSeqKeyPrefix = "proforma_seq:"

// formatProformaNumber constructs the invoice number from its components.
func formatProformaNumber(day string, sequence int) string {
	return fmt.Sprintf("PI-%s-%03d", day, sequence)
}

// NextProformaNumber hands out the next proforma invoice number for the day
// of now. Format: PI-{yyyymmdd}-{sequence}, sequence 3-digit zero-padded and
// restarting every day. The per-day counter lives in kv.
func NextProformaNumber(ctx context.Context, kv KVStore, now time.Time) (string, error) {
	day := now.Format("20060102")
	key := proformaSeqKeyPrefix + day

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("proforma sequence: %w", err)
	}

	seq := 0
	if ok {
		// A corrupt counter restarts the day's numbering.
		if n, err := strconv.Atoi(raw); err == nil {
			seq = n
		}
	}
	seq++

	if err := kv.Set(ctx, key, strconv.Itoa(seq)); err != nil {
		return "", fmt.Errorf("proforma sequence: %w", err)
	}
	return formatProformaNumber(day, seq), nil
}
