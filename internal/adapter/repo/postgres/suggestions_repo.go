package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/unite-hq/mentorlaunch/internal/domain"
)

// SuggestionRepo stores the latest pipeline result per (user, kind).
type SuggestionRepo struct{ Pool PgxPool }

// NewSuggestionRepo constructs a SuggestionRepo with the given pool.
func NewSuggestionRepo(p PgxPool) *SuggestionRepo { return &SuggestionRepo{Pool: p} }

// Upsert inserts or replaces the record for the (user, kind) pair.
func (r *SuggestionRepo) Upsert(ctx domain.Context, rec domain.SuggestionRecord) error {
	tracer := otel.Tracer("repo.suggestions")
	ctx, span := tracer.Start(ctx, "suggestions.Upsert")
	defer span.End()
	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	q := `INSERT INTO suggestion_records (id, user_id, kind, source, items, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)
	ON CONFLICT (user_id, kind)
	DO UPDATE SET source=EXCLUDED.source, items=EXCLUDED.items, updated_at=EXCLUDED.updated_at`
	_, err := r.Pool.Exec(ctx, q, id, rec.UserID, string(rec.Kind), string(rec.Source), rec.Items, now, now)
	if err != nil {
		return fmt.Errorf("op=suggestion.upsert: %w", err)
	}
	return nil
}

// GetLatest loads the stored record for the (user, kind) pair.
func (r *SuggestionRepo) GetLatest(ctx domain.Context, userID string, kind domain.Kind) (domain.SuggestionRecord, error) {
	tracer := otel.Tracer("repo.suggestions")
	ctx, span := tracer.Start(ctx, "suggestions.GetLatest")
	defer span.End()
	q := `SELECT id, user_id, kind, source, items, created_at, updated_at FROM suggestion_records WHERE user_id=$1 AND kind=$2`
	row := r.Pool.QueryRow(ctx, q, userID, string(kind))
	var rec domain.SuggestionRecord
	var k, src string
	if err := row.Scan(&rec.ID, &rec.UserID, &k, &src, &rec.Items, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SuggestionRecord{}, fmt.Errorf("op=suggestion.get: %w", domain.ErrNotFound)
		}
		return domain.SuggestionRecord{}, fmt.Errorf("op=suggestion.get: %w", err)
	}
	rec.Kind = domain.Kind(k)
	rec.Source = domain.Source(src)
	return rec, nil
}
