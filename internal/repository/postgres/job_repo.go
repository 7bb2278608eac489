package postgres

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// jobPostRepo is a read-only view of the job-post service's table. Job-post
// CRUD, filtering and pagination live outside this subsystem.
type jobPostRepo struct {
	db *pgxpool.Pool
}

// NewJobPostRepository creates a new job post repository
func NewJobPostRepository(db *pgxpool.Pool) domain.JobPostRepository {
	return &jobPostRepo{db: db}
}

func (r *jobPostRepo) GetByID(ctx context.Context, id int64) (*domain.JobPost, error) {
	query := `
		SELECT id, employer_id, title, description, location, salary_min, salary_max,
		       company_name, company_logo_url, is_visible, created_at
		FROM job_posts
		WHERE id = $1`

	var job domain.JobPost
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.SalaryMin, &job.SalaryMax, &job.CompanyName, &job.CompanyLogoURL,
		&job.IsVisible, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobPostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_posts WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}
