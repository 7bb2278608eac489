package postgres

import (
	"context"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type favoriteRepo struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *pgxpool.Pool) domain.FavoriteRepository {
	return &favoriteRepo{db: db}
}

// Toggle flips membership in one statement. The DELETE branch wins when the
// pair exists; otherwise the INSERT runs, and the unique constraint plus
// ON CONFLICT DO NOTHING absorbs a concurrent identical insert. Either way the
// table never holds two rows for the same pair.
func (r *favoriteRepo) Toggle(ctx context.Context, jobSeekerID, jobPostID int64) (domain.FavoriteState, error) {
	query := `
		WITH deleted AS (
			DELETE FROM job_favorites
			WHERE job_seeker_id = $1 AND job_post_id = $2
			RETURNING id
		), inserted AS (
			INSERT INTO job_favorites (job_seeker_id, job_post_id, created_at)
			SELECT $1, $2, now()
			WHERE NOT EXISTS (SELECT 1 FROM deleted)
			ON CONFLICT (job_seeker_id, job_post_id) DO NOTHING
			RETURNING id
		)
		SELECT
			(SELECT count(*) FROM deleted),
			(SELECT count(*) FROM inserted)`

	var deleted, inserted int64
	if err := r.db.QueryRow(ctx, query, jobSeekerID, jobPostID).Scan(&deleted, &inserted); err != nil {
		return "", err
	}
	if deleted > 0 {
		return domain.FavoriteRemoved, nil
	}
	// A lost race on the insert still means the pair is present now.
	return domain.FavoriteAdded, nil
}

func (r *favoriteRepo) Exists(ctx context.Context, jobSeekerID, jobPostID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_favorites WHERE job_seeker_id = $1 AND job_post_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobSeekerID, jobPostID).Scan(&exists)
	return exists, err
}

// ExistsBulk maps every requested id to its membership; ids never favorited
// come back false.
func (r *favoriteRepo) ExistsBulk(ctx context.Context, jobSeekerID int64, jobPostIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(jobPostIDs))
	for _, id := range jobPostIDs {
		result[id] = false
	}

	query := `
		SELECT job_post_id
		FROM job_favorites
		WHERE job_seeker_id = $1 AND job_post_id = ANY($2)`

	rows, err := r.db.Query(ctx, query, jobSeekerID, pq.Array(jobPostIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = true
	}
	return result, rows.Err()
}
