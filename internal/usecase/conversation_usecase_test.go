package usecase_test

import (
	"context"
	"strings"
	"testing"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPlaceholderAvatar = "/media/profile_pictures/place_holder.png"

func newConversationUC(msgRepo *MockMessageRepo, convRepo *MockConversationRepo, appRepo *MockApplicationRepo) domain.ConversationUsecase {
	return usecase.NewConversationUsecase(msgRepo, convRepo, appRepo, testPlaceholderAvatar)
}

func conversationApp() *domain.JobApplication {
	return &domain.JobApplication{
		ID: 1, JobID: 10, CandidateID: 5,
		CandidateUserID: "u1", EmployerID: 7, EmployerUserID: "u2",
	}
}

func TestConversationStart(t *testing.T) {
	ctx := context.Background()

	t.Run("Should bootstrap the thread from the candidate", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(msgRepo, new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)
		msgRepo.On("CreateOpener", ctx, int64(1), "u1", "u2").Return(true, nil)

		convID, err := uc.Start(ctx, jobSeekerActor("u1", 5), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), convID)
		msgRepo.AssertExpectations(t)
	})

	t.Run("Should be a no-op when the thread already exists", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(msgRepo, new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)
		msgRepo.On("CreateOpener", ctx, int64(1), "u1", "u2").Return(false, nil)

		convID, err := uc.Start(ctx, jobSeekerActor("u1", 5), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), convID)
	})

	t.Run("Should refuse the employer", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(msgRepo, new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)

		_, err := uc.Start(ctx, employerActor("u2", 7), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Only the candidate")
		msgRepo.AssertNotCalled(t, "CreateOpener")
	})

	t.Run("Should require an application id", func(t *testing.T) {
		uc := newConversationUC(new(MockMessageRepo), new(MockConversationRepo), new(MockApplicationRepo))

		_, err := uc.Start(ctx, jobSeekerActor("u1", 5), 0)
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestConversationSend(t *testing.T) {
	ctx := context.Background()

	t.Run("Should route the candidate's message to the employer", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(msgRepo, new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)
		msgRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Message) bool {
			return m.SenderUserID == "u1" && m.ReceiverUserID == "u2" && m.Body == "hello"
		})).Return(nil)

		msg, err := uc.Send(ctx, jobSeekerActor("u1", 5), 1, "Re: interview", "hello")
		require.NoError(t, err)
		assert.Equal(t, "u2", msg.ReceiverUserID)
		msgRepo.AssertExpectations(t)
	})

	t.Run("Should route the employer's message to the candidate", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(msgRepo, new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)
		msgRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Message) bool {
			return m.SenderUserID == "u2" && m.ReceiverUserID == "u1"
		})).Return(nil)

		msg, err := uc.Send(ctx, employerActor("u2", 7), 1, "", "thanks")
		require.NoError(t, err)
		assert.Equal(t, "u1", msg.ReceiverUserID)
	})

	t.Run("Should refuse a stranger", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(msgRepo, new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)

		_, err := uc.Send(ctx, jobSeekerActor("u99", 42), 1, "", "hi")
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		msgRepo.AssertNotCalled(t, "Create")
	})
}

func TestConversationListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the thread to either party", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(msgRepo, new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)
		msgRepo.On("GetByApplicationID", ctx, int64(1)).Return([]domain.Message{
			{ID: 1, Subject: domain.OpenerSubject},
			{ID: 2, Body: "hello"},
		}, nil)

		for _, actor := range []*domain.Actor{jobSeekerActor("u1", 5), employerActor("u2", 7)} {
			msgs, err := uc.ListMessages(ctx, actor, 1)
			require.NoError(t, err)
			assert.Len(t, msgs, 2)
		}
	})

	t.Run("Should refuse a stranger", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := newConversationUC(new(MockMessageRepo), new(MockConversationRepo), appRepo)

		appRepo.On("GetByID", ctx, int64(1)).Return(conversationApp(), nil)

		_, err := uc.ListMessages(ctx, employerActor("u99", 42), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})
}

func TestConversationList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should truncate long previews to fifty runes", func(t *testing.T) {
		convRepo := new(MockConversationRepo)
		uc := newConversationUC(new(MockMessageRepo), convRepo, new(MockApplicationRepo))

		long := strings.Repeat("a", 60)
		convRepo.On("ListForUser", ctx, "u1").Return([]domain.ConversationSummary{
			{ApplicationID: 1, JobTitle: "Backend Engineer", Name: "Acme", Avatar: "/a.png", LastMessage: long},
		}, nil)

		summaries, err := uc.ListConversations(ctx, jobSeekerActor("u1", 5))
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, strings.Repeat("a", 50)+"...", summaries[0].LastMessage)
	})

	t.Run("Should leave short previews and the empty marker untouched", func(t *testing.T) {
		convRepo := new(MockConversationRepo)
		uc := newConversationUC(new(MockMessageRepo), convRepo, new(MockApplicationRepo))

		convRepo.On("ListForUser", ctx, "u1").Return([]domain.ConversationSummary{
			{ApplicationID: 1, LastMessage: "short"},
			{ApplicationID: 2, LastMessage: domain.NoMessagesMarker},
		}, nil)

		summaries, err := uc.ListConversations(ctx, jobSeekerActor("u1", 5))
		require.NoError(t, err)
		assert.Equal(t, "short", summaries[0].LastMessage)
		assert.Equal(t, domain.NoMessagesMarker, summaries[1].LastMessage)
	})

	t.Run("Should substitute the placeholder avatar", func(t *testing.T) {
		convRepo := new(MockConversationRepo)
		uc := newConversationUC(new(MockMessageRepo), convRepo, new(MockApplicationRepo))

		convRepo.On("ListForUser", ctx, "u2").Return([]domain.ConversationSummary{
			{ApplicationID: 1, Avatar: "", LastMessage: "hi"},
			{ApplicationID: 2, Avatar: "/custom.png", LastMessage: "yo"},
		}, nil)

		summaries, err := uc.ListConversations(ctx, employerActor("u2", 7))
		require.NoError(t, err)
		assert.Equal(t, testPlaceholderAvatar, summaries[0].Avatar)
		assert.Equal(t, "/custom.png", summaries[1].Avatar)
	})
}
