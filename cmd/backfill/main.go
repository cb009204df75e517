// Command backfill recomputes the denormalized columns on the invoices table
// from the stored record JSON. Useful after the listing columns change or a
// record is patched by hand.
// Usage: go run ./cmd/backfill
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"billforge/internal/config"
	"billforge/internal/domain"
	"billforge/internal/repository/postgres"
)

const batchSize = 100

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	offset := 0
	total := 0

	for {
		var invoices []domain.Invoice
		err := db.SelectContext(ctx, &invoices,
			`SELECT id, invoice_number, invoice_date, receiver_name, sale_type, grand_total, record, created_at
			 FROM invoices
			 ORDER BY created_at
			 LIMIT $1 OFFSET $2`, batchSize, offset)
		if err != nil {
			return fmt.Errorf("querying invoices at offset %d: %w", offset, err)
		}
		if len(invoices) == 0 {
			break
		}

		for i := range invoices {
			inv := &invoices[i]

			var rec domain.InvoiceRecord
			if err := json.Unmarshal(inv.Record, &rec); err != nil {
				log.Printf("WARN: skipping invoice %s: unmarshal record: %v", inv.ID, err)
				continue
			}

			_, err := db.ExecContext(ctx,
				`UPDATE invoices
				 SET invoice_number = $1, invoice_date = $2, receiver_name = $3,
				     sale_type = $4, grand_total = $5
				 WHERE id = $6`,
				rec.InvoiceNumber, rec.InvoiceDate, rec.Receiver.Name,
				rec.SaleType, rec.Totals.GrandTotal, inv.ID)
			if err != nil {
				log.Printf("WARN: failed to update invoice %s: %v", inv.ID, err)
				continue
			}
			total++
		}

		if total > 0 && total%batchSize == 0 {
			log.Printf("Progress: %d invoices processed", total)
		}

		offset += len(invoices)
	}

	log.Printf("Backfill complete: %d invoices updated", total)
	return nil
}
