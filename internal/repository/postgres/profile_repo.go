package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// ResolveActor loads the user together with whichever profile kind it owns.
// One round trip; the two LEFT JOINs replace the old
// try-jobseeker-then-employer probe pair.
func (r *profileRepo) ResolveActor(ctx context.Context, userID string) (*domain.Actor, error) {
	query := `
		SELECT
			u.id, u.username,
			js.id, js.first_name, js.last_name, js.email, js.phone, js.city,
			js.profile_picture_url, js.is_premium, js.premium_since,
			ep.id, ep.first_name, ep.last_name, ep.email, ep.company_name,
			ep.company_logo_url, ep.is_premium, ep.premium_since
		FROM users u
		LEFT JOIN job_seeker_profiles js ON js.user_id = u.id
		LEFT JOIN employer_profiles ep ON ep.user_id = u.id
		WHERE u.id = $1`

	var (
		actor domain.Actor

		jsID                          *int64
		jsFirst, jsLast, jsEmail      *string
		jsPhone, jsCity, jsPictureURL *string
		jsPremium                     *bool
		jsPremiumSince                *time.Time

		epID                        *int64
		epFirst, epLast, epEmail    *string
		epCompanyName, epLogoURL    *string
		epPremium                   *bool
		epPremiumSince              *time.Time
	)

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&actor.UserID, &actor.Username,
		&jsID, &jsFirst, &jsLast, &jsEmail, &jsPhone, &jsCity,
		&jsPictureURL, &jsPremium, &jsPremiumSince,
		&epID, &epFirst, &epLast, &epEmail, &epCompanyName,
		&epLogoURL, &epPremium, &epPremiumSince,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	switch {
	case jsID != nil:
		actor.Kind = domain.ActorJobSeeker
		actor.JobSeeker = &domain.JobSeekerProfile{
			ID:                *jsID,
			UserID:            actor.UserID,
			FirstName:         deref(jsFirst),
			LastName:          deref(jsLast),
			Email:             deref(jsEmail),
			Phone:             jsPhone,
			City:              jsCity,
			ProfilePictureURL: jsPictureURL,
			IsPremium:         jsPremium != nil && *jsPremium,
			PremiumSince:      jsPremiumSince,
		}
	case epID != nil:
		actor.Kind = domain.ActorEmployer
		actor.Employer = &domain.EmployerProfile{
			ID:             *epID,
			UserID:         actor.UserID,
			FirstName:      deref(epFirst),
			LastName:       deref(epLast),
			Email:          deref(epEmail),
			CompanyName:    deref(epCompanyName),
			CompanyLogoURL: epLogoURL,
			IsPremium:      epPremium != nil && *epPremium,
			PremiumSince:   epPremiumSince,
		}
	default:
		actor.Kind = domain.ActorNone
	}

	return &actor, nil
}

// TogglePremiumJobSeeker flips the premium flag atomically. The CASE reads the
// pre-update value, so turning on stamps premium_since and turning off clears it.
func (r *profileRepo) TogglePremiumJobSeeker(ctx context.Context, profileID int64) (*domain.PremiumStatus, error) {
	query := `
		UPDATE job_seeker_profiles
		SET is_premium = NOT is_premium,
		    premium_since = CASE WHEN NOT is_premium THEN now() ELSE NULL END
		WHERE id = $1
		RETURNING is_premium, premium_since`

	status := domain.PremiumStatus{UserType: domain.ActorJobSeeker}
	err := r.db.QueryRow(ctx, query, profileID).Scan(&status.IsPremium, &status.PremiumSince)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *profileRepo) TogglePremiumEmployer(ctx context.Context, profileID int64) (*domain.PremiumStatus, error) {
	query := `
		UPDATE employer_profiles
		SET is_premium = NOT is_premium,
		    premium_since = CASE WHEN NOT is_premium THEN now() ELSE NULL END
		WHERE id = $1
		RETURNING is_premium, premium_since`

	status := domain.PremiumStatus{UserType: domain.ActorEmployer}
	err := r.db.QueryRow(ctx, query, profileID).Scan(&status.IsPremium, &status.PremiumSince)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
