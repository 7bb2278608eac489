package domain

import (
	"context"
	"time"
)

// JobPost is owned by the job-post service; this subsystem only reads it to
// authorize applications, favorites and appointments.
type JobPost struct {
	ID             int64     `json:"id"`
	EmployerID     int64     `json:"employer_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	SalaryMin      float64   `json:"salary_min"`
	SalaryMax      float64   `json:"salary_max"`
	CompanyName    string    `json:"company_name"`
	CompanyLogoURL *string   `json:"company_logo_url,omitempty"`
	IsVisible      bool      `json:"is_visible"`
	CreatedAt      time.Time `json:"created_at"`
}

type JobPostRepository interface {
	GetByID(ctx context.Context, id int64) (*JobPost, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
