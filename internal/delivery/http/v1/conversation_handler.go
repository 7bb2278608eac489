package v1

import (
	"net/http"
	"strconv"

	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	conversationUC domain.ConversationUsecase
}

// NewConversationHandler registers conversation and message routes
func NewConversationHandler(r *gin.RouterGroup, conversationUC domain.ConversationUsecase) {
	handler := &ConversationHandler{conversationUC: conversationUC}

	r.POST("/start-conversation", handler.Start)
	r.GET("/conversations", handler.ListConversations)
	r.GET("/applications/:id/messages", handler.ListMessages)
	r.POST("/applications/:id/messages", handler.Send)
}

// StartConversationRequest is the request payload for starting a conversation
type StartConversationRequest struct {
	ApplicationID int64 `json:"application_id"`
}

// Start godoc
// @Summary      Start a conversation
// @Description  Bootstrap the message thread for an application (candidate only, idempotent)
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        body  body      StartConversationRequest  true  "Application reference"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /start-conversation [post]
// @Security     BearerAuth
func (h *ConversationHandler) Start(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Application ID is required"))
		return
	}

	conversationID, err := h.conversationUC.Start(c.Request.Context(), actor, req.ApplicationID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversation ready", gin.H{"id": conversationID})
}

// ListConversations godoc
// @Summary      List conversations
// @Description  One preview per application where the caller is a party
// @Tags         conversations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ConversationSummary}
// @Router       /conversations [get]
// @Security     BearerAuth
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	actor := middleware.GetActor(c)

	summaries, err := h.conversationUC.ListConversations(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversations retrieved", summaries)
}

// ListMessages godoc
// @Summary      List messages
// @Description  Full thread for an application, oldest first (parties only)
// @Tags         conversations
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=[]domain.Message}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/messages [get]
// @Security     BearerAuth
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	actor := middleware.GetActor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	messages, err := h.conversationUC.ListMessages(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", messages)
}

// SendMessageRequest is the request payload for sending a message. The
// receiver is computed server-side from the application's parties.
type SendMessageRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// Send godoc
// @Summary      Send a message
// @Description  Append a message to the application thread; receiver is always the other party
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Application ID"
// @Param        body  body      SendMessageRequest  true  "Message content"
// @Success      201   {object}  response.Response{data=domain.Message}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/messages [post]
// @Security     BearerAuth
func (h *ConversationHandler) Send(c *gin.Context) {
	actor := middleware.GetActor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.conversationUC.Send(c.Request.Context(), actor, id, req.Subject, req.Body)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", msg)
}
