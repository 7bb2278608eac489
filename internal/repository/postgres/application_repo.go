package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the application and its initial status-history row in one
// transaction. Duplicate (job, candidate) submissions are resolved by the
// unique constraint at insert time, not by a prior existence read, so two
// racing submissions yield exactly one success and one Conflict.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	app.AppliedAt = now
	app.StatusUpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusReceived
	}

	query := `
		INSERT INTO job_applications (job_id, candidate_id, cv_url, cover_letter_url, status, applied_at, status_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err = tx.QueryRow(ctx, query,
		app.JobID,
		app.CandidateID,
		app.CvURL,
		app.CoverLetterURL,
		app.Status,
		app.AppliedAt,
		app.StatusUpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this job")
		}
		return apperror.Internal(err)
	}

	historyQuery := `
		INSERT INTO job_application_status_history (application_id, status, created_at)
		VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, historyQuery, app.ID, app.Status, now); err != nil {
		return apperror.Internal(err)
	}

	return tx.Commit(ctx)
}

// GetByID retrieves an application with both party identities joined in, so
// usecases can run ownership checks without extra round trips.
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_id, a.cv_url, a.cover_letter_url,
			a.status, a.applied_at, a.status_updated_at,
			j.title, j.company_name,
			js.user_id, j.employer_id, ep.user_id
		FROM job_applications a
		JOIN job_posts j ON a.job_id = j.id
		JOIN job_seeker_profiles js ON a.candidate_id = js.id
		JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE a.id = $1`

	var app domain.JobApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.CvURL, &app.CoverLetterURL,
		&app.Status, &app.AppliedAt, &app.StatusUpdatedAt,
		&app.JobTitle, &app.CompanyName,
		&app.CandidateUserID, &app.EmployerID, &app.EmployerUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job. Premium candidates surface
// first, newest applications next.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_id, a.cv_url, a.cover_letter_url,
			a.status, a.applied_at, a.status_updated_at,
			js.first_name || ' ' || js.last_name AS candidate_name,
			js.is_premium
		FROM job_applications a
		JOIN job_seeker_profiles js ON a.candidate_id = js.id
		WHERE a.job_id = $1
		ORDER BY js.is_premium DESC, a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.CvURL, &app.CoverLetterURL,
			&app.Status, &app.AppliedAt, &app.StatusUpdatedAt,
			&app.CandidateName, &app.CandidatePremium,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByCandidateID retrieves the candidate's own applications with job titles.
func (r *applicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_id, a.cv_url, a.cover_letter_url,
			a.status, a.applied_at, a.status_updated_at,
			j.title, j.company_name
		FROM job_applications a
		JOIN job_posts j ON a.job_id = j.id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.JobApplication
	for rows.Next() {
		var app domain.JobApplication
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.CvURL, &app.CoverLetterURL,
			&app.Status, &app.AppliedAt, &app.StatusUpdatedAt,
			&app.JobTitle, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus writes the new status, stamps status_updated_at and appends the
// audit row in one transaction. A failed update leaves both untouched.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	result, err := tx.Exec(ctx,
		`UPDATE job_applications SET status = $2, status_updated_at = $3 WHERE id = $1`,
		id, status, now)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO job_application_status_history (application_id, status, created_at) VALUES ($1, $2, $3)`,
		id, status, now)
	if err != nil {
		return apperror.Internal(err)
	}

	return tx.Commit(ctx)
}

// GetStatusHistory returns the audit trail newest-first.
func (r *applicationRepo) GetStatusHistory(ctx context.Context, applicationID int64) ([]domain.StatusHistoryEntry, error) {
	query := `
		SELECT id, application_id, status, created_at
		FROM job_application_status_history
		WHERE application_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.StatusHistoryEntry
	for rows.Next() {
		var e domain.StatusHistoryEntry
		if err := rows.Scan(&e.ID, &e.ApplicationID, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
