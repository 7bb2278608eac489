package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ActorKind tags which profile kind an authenticated user owns. A user has at
// most one of the two profile kinds.
type ActorKind string

const (
	ActorJobSeeker ActorKind = "jobseeker"
	ActorEmployer  ActorKind = "employer"
	ActorNone      ActorKind = "none"
)

// JobSeekerProfile is the candidate-side profile. Profile CRUD and document
// uploads live in an external service; the fields here are the ones this
// subsystem reads and the premium flag it owns.
type JobSeekerProfile struct {
	ID                int64      `json:"id"`
	UserID            string     `json:"user_id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Phone             *string    `json:"phone,omitempty"`
	City              *string    `json:"city,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	IsPremium         bool       `json:"is_premium"`
	PremiumSince      *time.Time `json:"premium_since,omitempty"`
}

// EmployerProfile is the employer-side profile.
type EmployerProfile struct {
	ID             int64      `json:"id"`
	UserID         string     `json:"user_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	CompanyName    string     `json:"company_name"`
	CompanyLogoURL *string    `json:"company_logo_url,omitempty"`
	IsPremium      bool       `json:"is_premium"`
	PremiumSince   *time.Time `json:"premium_since,omitempty"`
}

// Actor is the authenticated identity resolved to its profile kind, done once
// per request instead of try-jobseeker-then-employer probes at every call site.
type Actor struct {
	UserID    string            `json:"user_id"`
	Username  string            `json:"username"`
	Kind      ActorKind         `json:"kind"`
	JobSeeker *JobSeekerProfile `json:"job_seeker,omitempty"`
	Employer  *EmployerProfile  `json:"employer,omitempty"`
}

// PremiumStatus is the response shape for the premium toggle endpoints.
type PremiumStatus struct {
	IsPremium    bool       `json:"is_premium"`
	UserType     ActorKind  `json:"user_type"`
	PremiumSince *time.Time `json:"premium_since,omitempty"`
}

type ProfileRepository interface {
	// ResolveActor loads the user row and whichever profile kind the user
	// owns in one round trip. ErrNotFound when the user does not exist.
	ResolveActor(ctx context.Context, userID string) (*Actor, error)
	TogglePremiumJobSeeker(ctx context.Context, profileID int64) (*PremiumStatus, error)
	TogglePremiumEmployer(ctx context.Context, profileID int64) (*PremiumStatus, error)
}

type ProfileUsecase interface {
	ResolveActor(ctx context.Context, userID string) (*Actor, error)
}

type PremiumUsecase interface {
	Toggle(ctx context.Context, actor *Actor) (*PremiumStatus, error)
	Status(ctx context.Context, actor *Actor) (*PremiumStatus, error)
}
