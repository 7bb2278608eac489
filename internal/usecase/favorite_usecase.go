package usecase

import (
	"context"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type favoriteUsecase struct {
	favoriteRepo domain.FavoriteRepository
	jobRepo      domain.JobPostRepository
}

// NewFavoriteUsecase creates a new favorite usecase
func NewFavoriteUsecase(favoriteRepo domain.FavoriteRepository, jobRepo domain.JobPostRepository) domain.FavoriteUsecase {
	return &favoriteUsecase{
		favoriteRepo: favoriteRepo,
		jobRepo:      jobRepo,
	}
}

// Toggle adds the favorite if absent and removes it otherwise. The repository
// does the flip in one atomic statement; this method never inspects membership
// first.
func (uc *favoriteUsecase) Toggle(ctx context.Context, actor *domain.Actor, jobPostID int64) (domain.FavoriteState, error) {
	if actor.Kind != domain.ActorJobSeeker {
		return "", apperror.Forbidden("You must have a job seeker profile to add favorites")
	}

	exists, err := uc.jobRepo.Exists(ctx, jobPostID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if !exists {
		return "", apperror.NotFound("Job post not found")
	}

	state, err := uc.favoriteRepo.Toggle(ctx, actor.JobSeeker.ID, jobPostID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return state, nil
}

// IsFavorite reports membership; a missing job-seeker profile means false,
// not an error.
func (uc *favoriteUsecase) IsFavorite(ctx context.Context, actor *domain.Actor, jobPostID int64) (bool, error) {
	if actor.Kind != domain.ActorJobSeeker {
		return false, nil
	}
	exists, err := uc.favoriteRepo.Exists(ctx, actor.JobSeeker.ID, jobPostID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

// BulkCheck maps every id to its membership. Without a job-seeker profile
// every id maps to false rather than erroring.
func (uc *favoriteUsecase) BulkCheck(ctx context.Context, actor *domain.Actor, jobPostIDs []int64) (map[int64]bool, error) {
	if len(jobPostIDs) == 0 {
		return nil, apperror.BadRequest("A list of job_ids is required")
	}

	if actor.Kind != domain.ActorJobSeeker {
		result := make(map[int64]bool, len(jobPostIDs))
		for _, id := range jobPostIDs {
			result[id] = false
		}
		return result, nil
	}

	result, err := uc.favoriteRepo.ExistsBulk(ctx, actor.JobSeeker.ID, jobPostIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}
