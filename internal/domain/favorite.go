package domain

import (
	"context"
	"time"
)

// FavoriteState is the outcome of a toggle.
type FavoriteState string

const (
	FavoriteAdded   FavoriteState = "added"
	FavoriteRemoved FavoriteState = "removed"
)

// JobFavorite is a (job_seeker, job_post) pair with a uniqueness constraint.
// It is only ever written through the toggle.
type JobFavorite struct {
	ID          int64     `json:"id"`
	JobSeekerID int64     `json:"job_seeker_id"`
	JobPostID   int64     `json:"job_post_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type FavoriteRepository interface {
	// Toggle creates the favorite if absent, deletes it otherwise, in a single
	// atomic statement. The unique constraint is the authority; concurrent
	// identical calls never leave two rows or double-delete.
	Toggle(ctx context.Context, jobSeekerID, jobPostID int64) (FavoriteState, error)
	Exists(ctx context.Context, jobSeekerID, jobPostID int64) (bool, error)
	ExistsBulk(ctx context.Context, jobSeekerID int64, jobPostIDs []int64) (map[int64]bool, error)
}

type FavoriteUsecase interface {
	Toggle(ctx context.Context, actor *Actor, jobPostID int64) (FavoriteState, error)
	IsFavorite(ctx context.Context, actor *Actor, jobPostID int64) (bool, error)
	BulkCheck(ctx context.Context, actor *Actor, jobPostIDs []int64) (map[int64]bool, error)
}
