// README: Itinerary store backed by PostgreSQL; responses persisted as JSONB.
package itinerary

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripmate/internal/types"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Insert(ctx context.Context, it *SavedItinerary) error {
	payload, err := json.Marshal(it.Response)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO itineraries (id, user_id, destination, days, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(it.ID),
		string(it.UserID),
		it.Destination,
		it.Days,
		payload,
		it.CreatedAt,
	)
	return err
}

func (s *PGStore) Get(ctx context.Context, id types.ID) (*SavedItinerary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, destination, days, response, created_at
		FROM itineraries
		WHERE id = $1`, string(id),
	)
	return getScanned(row)
}

// getScanned maps a missing row to ErrNotFound. pgx surfaces its own
// ErrNoRows from QueryRow, not database/sql's.
func getScanned(row rowScanner) (*SavedItinerary, error) {
	it, err := scanItinerary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return it, err
}

func (s *PGStore) ListByUser(ctx context.Context, userID types.ID) ([]SavedItinerary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, destination, days, response, created_at
		FROM itineraries
		WHERE user_id = $1
		ORDER BY created_at DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedItinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItinerary(row rowScanner) (*SavedItinerary, error) {
	var it SavedItinerary
	var payload []byte
	if err := row.Scan(&it.ID, &it.UserID, &it.Destination, &it.Days, &payload, &it.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &it.Response); err != nil {
		return nil, err
	}
	return &it, nil
}
