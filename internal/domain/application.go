package domain

import (
	"context"
	"time"
)

// Application status labels. Any label may follow any label; the workflow is
// deliberately lax beyond the fixed set.
const (
	ApplicationStatusReceived   = "received"
	ApplicationStatusInProgress = "in_progress"
	ApplicationStatusAccepted   = "accepted"
	ApplicationStatusRejected   = "rejected"
)

// ValidApplicationStatus reports whether s is one of the four labels.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusReceived, ApplicationStatusInProgress,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// JobApplication links a candidate to a job post. At most one application
// exists per (job, candidate) pair, enforced by a unique constraint.
type JobApplication struct {
	ID              int64     `json:"id"`
	JobID           int64     `json:"job_id"`
	CandidateID     int64     `json:"candidate_id"`
	CvURL           *string   `json:"cv_url,omitempty"`
	CoverLetterURL  *string   `json:"cover_letter_url,omitempty"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"applied_at"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`

	// Joined data for list responses
	JobTitle         *string `json:"job_title,omitempty"`
	CompanyName      *string `json:"company_name,omitempty"`
	CandidateName    *string `json:"candidate_name,omitempty"`
	CandidatePremium *bool   `json:"candidate_premium,omitempty"`

	// Party identities, joined for authorization checks
	CandidateUserID string `json:"-"`
	EmployerID      int64  `json:"-"`
	EmployerUserID  string `json:"-"`
}

// StatusHistoryEntry is one append-only audit row per status write, including
// the initial one.
type StatusHistoryEntry struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ApplicationRepository interface {
	// Create inserts the application together with its first history row in
	// one transaction. A duplicate (job, candidate) pair surfaces as a
	// Conflict error from the unique constraint, never from a pre-read.
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	GetByJobID(ctx context.Context, jobID int64) ([]JobApplication, error)
	GetByCandidateID(ctx context.Context, candidateID int64) ([]JobApplication, error)
	// UpdateStatus writes the status, stamps status_updated_at and appends a
	// history row atomically.
	UpdateStatus(ctx context.Context, id int64, status string) error
	GetStatusHistory(ctx context.Context, applicationID int64) ([]StatusHistoryEntry, error)
}

type ApplicationUsecase interface {
	// Job seeker operations
	Submit(ctx context.Context, actor *Actor, jobID int64, cvURL, coverLetterURL string) (*JobApplication, error)
	ListMine(ctx context.Context, actor *Actor) ([]JobApplication, error)

	// Employer operations
	ListByJob(ctx context.Context, actor *Actor, jobID int64) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, actor *Actor, applicationID int64, status string) (*JobApplication, error)

	// Either party
	Get(ctx context.Context, actor *Actor, applicationID int64) (*JobApplication, error)
	History(ctx context.Context, actor *Actor, applicationID int64) ([]StatusHistoryEntry, error)
}
