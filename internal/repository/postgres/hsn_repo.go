package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"billforge/internal/port"
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) LoadAll(ctx context.Context) ([]port.HSNEntry, error) {
	var entries []port.HSNEntry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT code, description, cgst_rate, sgst_rate, igst_rate, cess_rate
		 FROM hsn_codes
		 ORDER BY code`)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
