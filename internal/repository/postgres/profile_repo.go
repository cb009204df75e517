package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billforge/internal/domain"
	"billforge/internal/port"
)

type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new PostgreSQL-backed ProfileRepository.
func NewProfileRepo(db *sqlx.DB) port.ProfileRepository {
	return &profileRepo{db: db}
}

// profileRow carries the company details as a jsonb column.
type profileRow struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Company   json.RawMessage `db:"company"`
	Terms     string          `db:"terms"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (row *profileRow) toDomain() (*domain.Profile, error) {
	p := &domain.Profile{
		ID:        row.ID,
		Name:      row.Name,
		Terms:     row.Terms,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Company, &p.Company); err != nil {
		return nil, fmt.Errorf("unmarshaling profile company: %w", err)
	}
	return p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	profile.ID = uuid.New()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	company, err := json.Marshal(profile.Company)
	if err != nil {
		return fmt.Errorf("profileRepo.Create marshal: %w", err)
	}

	query := `INSERT INTO profiles (id, name, company, terms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		profile.ID, profile.Name, company, profile.Terms, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "name") {
			return domain.ErrDuplicateProfileName
		}
		return fmt.Errorf("profileRepo.Create: %w", err)
	}
	return nil
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM profiles WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("profileRepo.GetByID: %w", err)
	}
	return row.toDomain()
}

func (r *profileRepo) List(ctx context.Context, offset, limit int) ([]domain.Profile, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM profiles")
	if err != nil {
		return nil, 0, fmt.Errorf("profileRepo.List count: %w", err)
	}

	var rows []profileRow
	err = r.db.SelectContext(ctx, &rows,
		"SELECT * FROM profiles ORDER BY name ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("profileRepo.List: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, 0, fmt.Errorf("profileRepo.List: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, total, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	profile.UpdatedAt = time.Now().UTC()

	company, err := json.Marshal(profile.Company)
	if err != nil {
		return fmt.Errorf("profileRepo.Update marshal: %w", err)
	}

	query := `UPDATE profiles SET name = $1, company = $2, terms = $3, updated_at = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		profile.Name, company, profile.Terms, profile.UpdatedAt, profile.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "name") {
			return domain.ErrDuplicateProfileName
		}
		return fmt.Errorf("profileRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("profileRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
