package domain

import (
	"context"
	"time"
)

// Appointment status labels
const (
	AppointmentStatusPending  = "pending"
	AppointmentStatusAccepted = "accepted"
	AppointmentStatusRejected = "rejected"
)

// Appointment is created by the employer against one of their applications.
// The job seeker answers once with accepted/rejected plus a message; a later
// answer overwrites an earlier one (terminal-state enforcement is deliberately
// absent, matching the modeled workflow).
type Appointment struct {
	ID                       int64      `json:"id"`
	EmployerID               int64      `json:"employer_id"`
	JobSeekerID              int64      `json:"job_seeker_id"`
	ApplicationID            int64      `json:"job_application"`
	AppointmentTime          time.Time  `json:"appointment_time"`
	Description              string     `json:"description"`
	Status                   string     `json:"status"`
	JobSeekerResponseMessage *string    `json:"job_seeker_response_message,omitempty"`
	JobSeekerResponseDate    *time.Time `json:"job_seeker_response_date,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	JobSeekerName *string `json:"job_seeker_name,omitempty"`
}

// CreateAppointmentInput is validated with validator/v10 before any store
// access.
type CreateAppointmentInput struct {
	ApplicationID   int64     `json:"job_application" validate:"required"`
	AppointmentTime time.Time `json:"appointment_time" validate:"required"`
	Description     string    `json:"description" validate:"required"`
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *Appointment) error
	GetByEmployerID(ctx context.Context, employerID int64) ([]Appointment, error)
	GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]Appointment, error)
	// Respond sets status, response message and the server-clock response time
	// in a single row write.
	Respond(ctx context.Context, id, jobSeekerID int64, status, message string) (*Appointment, error)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, actor *Actor, in CreateAppointmentInput) (*Appointment, error)
	Respond(ctx context.Context, actor *Actor, appointmentID int64, status, message string) (*Appointment, error)
	ListForUser(ctx context.Context, actor *Actor) ([]Appointment, error)
}
