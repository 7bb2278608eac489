package usecase

import (
	"context"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

// previewLimit is how many runes of the last message a conversation preview
// keeps before an ellipsis is appended.
const previewLimit = 50

type conversationUsecase struct {
	messageRepo      domain.MessageRepository
	conversationRepo domain.ConversationRepository
	applicationRepo  domain.ApplicationRepository
	placeholderURL   string
}

// NewConversationUsecase creates a new conversation usecase. placeholderURL is
// the avatar used when the counterpart has none; it is process-wide startup
// configuration, never mutated at request time.
func NewConversationUsecase(
	messageRepo domain.MessageRepository,
	conversationRepo domain.ConversationRepository,
	applicationRepo domain.ApplicationRepository,
	placeholderURL string,
) domain.ConversationUsecase {
	return &conversationUsecase{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		applicationRepo:  applicationRepo,
		placeholderURL:   placeholderURL,
	}
}

// Start bootstraps the thread for an application with a synthetic empty-body
// message from the candidate to the employer. Only the candidate may start the
// conversation; repeated calls are no-ops. The application id doubles as the
// conversation id.
func (uc *conversationUsecase) Start(ctx context.Context, actor *domain.Actor, applicationID int64) (int64, error) {
	if applicationID == 0 {
		return 0, apperror.BadRequest("Application ID is required")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return 0, apperror.NotFound("Application not found")
		}
		return 0, apperror.Internal(err)
	}

	if actor.UserID != app.CandidateUserID {
		return 0, apperror.Forbidden("Only the candidate can start this conversation")
	}

	// Idempotent: the repository's partial unique index absorbs duplicates.
	if _, err := uc.messageRepo.CreateOpener(ctx, applicationID, app.CandidateUserID, app.EmployerUserID); err != nil {
		return 0, apperror.Internal(err)
	}

	return applicationID, nil
}

// ListMessages returns the thread oldest-first to either party.
func (uc *conversationUsecase) ListMessages(ctx context.Context, actor *domain.Actor, applicationID int64) ([]domain.Message, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if !isParty(actor, app) {
		return nil, apperror.Forbidden("You are not allowed to view these messages")
	}
	return uc.messageRepo.GetByApplicationID(ctx, applicationID)
}

// Send creates a message in the thread. The receiver is always computed as
// the other party; callers cannot address arbitrary users.
func (uc *conversationUsecase) Send(ctx context.Context, actor *domain.Actor, applicationID int64, subject, body string) (*domain.Message, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	if !isParty(actor, app) {
		return nil, apperror.Forbidden("You cannot send a message on this application")
	}

	receiver := app.EmployerUserID
	if actor.UserID == app.EmployerUserID {
		receiver = app.CandidateUserID
	}

	msg := &domain.Message{
		ApplicationID:  applicationID,
		SenderUserID:   actor.UserID,
		ReceiverUserID: receiver,
		Subject:        subject,
		Body:           body,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}
	return msg, nil
}

// ListConversations returns one preview per application where the actor is a
// party, with display fallbacks applied.
func (uc *conversationUsecase) ListConversations(ctx context.Context, actor *domain.Actor) ([]domain.ConversationSummary, error) {
	summaries, err := uc.conversationRepo.ListForUser(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	for i := range summaries {
		if summaries[i].Avatar == "" {
			summaries[i].Avatar = uc.placeholderURL
		}
		if summaries[i].LastMessage != domain.NoMessagesMarker {
			summaries[i].LastMessage = truncatePreview(summaries[i].LastMessage)
		}
	}
	return summaries, nil
}

// truncatePreview cuts the body to previewLimit runes and marks the cut.
func truncatePreview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLimit {
		return body
	}
	return string(runes[:previewLimit]) + "..."
}
