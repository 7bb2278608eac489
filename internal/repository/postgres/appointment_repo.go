package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type appointmentRepo struct {
	db *pgxpool.Pool
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *pgxpool.Pool) domain.AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	query := `
		INSERT INTO appointments (employer_id, job_seeker_id, application_id, appointment_time, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	appt.CreatedAt = time.Now()
	if appt.Status == "" {
		appt.Status = domain.AppointmentStatusPending
	}

	return r.db.QueryRow(ctx, query,
		appt.EmployerID,
		appt.JobSeekerID,
		appt.ApplicationID,
		appt.AppointmentTime,
		appt.Description,
		appt.Status,
		appt.CreatedAt,
	).Scan(&appt.ID)
}

func (r *appointmentRepo) GetByEmployerID(ctx context.Context, employerID int64) ([]domain.Appointment, error) {
	query := `
		SELECT ap.id, ap.employer_id, ap.job_seeker_id, ap.application_id, ap.appointment_time,
		       ap.description, ap.status, ap.job_seeker_response_message, ap.job_seeker_response_date,
		       ap.created_at,
		       j.title, js.first_name || ' ' || js.last_name AS job_seeker_name
		FROM appointments ap
		JOIN job_applications a ON ap.application_id = a.id
		JOIN job_posts j ON a.job_id = j.id
		JOIN job_seeker_profiles js ON ap.job_seeker_id = js.id
		WHERE ap.employer_id = $1
		ORDER BY ap.appointment_time DESC`

	return r.queryAppointments(ctx, query, employerID, true)
}

func (r *appointmentRepo) GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]domain.Appointment, error) {
	query := `
		SELECT ap.id, ap.employer_id, ap.job_seeker_id, ap.application_id, ap.appointment_time,
		       ap.description, ap.status, ap.job_seeker_response_message, ap.job_seeker_response_date,
		       ap.created_at,
		       j.title, ep.company_name
		FROM appointments ap
		JOIN job_applications a ON ap.application_id = a.id
		JOIN job_posts j ON a.job_id = j.id
		JOIN employer_profiles ep ON ap.employer_id = ep.id
		WHERE ap.job_seeker_id = $1
		ORDER BY ap.appointment_time DESC`

	return r.queryAppointments(ctx, query, jobSeekerID, false)
}

func (r *appointmentRepo) queryAppointments(ctx context.Context, query string, id int64, employerView bool) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var appt domain.Appointment
		var extra *string
		if err := rows.Scan(
			&appt.ID, &appt.EmployerID, &appt.JobSeekerID, &appt.ApplicationID,
			&appt.AppointmentTime, &appt.Description, &appt.Status,
			&appt.JobSeekerResponseMessage, &appt.JobSeekerResponseDate, &appt.CreatedAt,
			&appt.JobTitle, &extra,
		); err != nil {
			return nil, err
		}
		if employerView {
			appt.JobSeekerName = extra
		} else {
			appt.CompanyName = extra
		}
		appointments = append(appointments, appt)
	}
	return appointments, rows.Err()
}

// Respond writes status, response message and the server-clock response time
// in a single row update. The row filter carries the ownership check, so zero
// rows affected means not-found-or-not-owner.
func (r *appointmentRepo) Respond(ctx context.Context, id, jobSeekerID int64, status, message string) (*domain.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $3, job_seeker_response_message = $4, job_seeker_response_date = now()
		WHERE id = $1 AND job_seeker_id = $2
		RETURNING id, employer_id, job_seeker_id, application_id, appointment_time, description,
		          status, job_seeker_response_message, job_seeker_response_date, created_at`

	var appt domain.Appointment
	err := r.db.QueryRow(ctx, query, id, jobSeekerID, status, message).Scan(
		&appt.ID, &appt.EmployerID, &appt.JobSeekerID, &appt.ApplicationID,
		&appt.AppointmentTime, &appt.Description, &appt.Status,
		&appt.JobSeekerResponseMessage, &appt.JobSeekerResponseDate, &appt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}
