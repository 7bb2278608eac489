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

type FavoriteHandler struct {
	favoriteUC domain.FavoriteUsecase
}

// NewFavoriteHandler registers favorite routes
func NewFavoriteHandler(r *gin.RouterGroup, favoriteUC domain.FavoriteUsecase) {
	handler := &FavoriteHandler{favoriteUC: favoriteUC}

	r.POST("/jobs/:jobId/toggle-favorite", handler.Toggle)
	r.GET("/jobs/:jobId/check-favorite", handler.Check)
	r.POST("/check-favorites", handler.BulkCheck)
}

// Toggle godoc
// @Summary      Toggle a favorite
// @Description  Add the job to favorites if absent, remove it otherwise
// @Tags         favorites
// @Produce      json
// @Param        jobId  path      int  true  "Job post ID"
// @Success      200    {object}  response.Response "removed"
// @Success      201    {object}  response.Response "added"
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId}/toggle-favorite [post]
// @Security     BearerAuth
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	actor := middleware.GetActor(c)

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	state, err := h.favoriteUC.Toggle(c.Request.Context(), actor, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	code := http.StatusOK
	if state == domain.FavoriteAdded {
		code = http.StatusCreated
	}
	response.Success(c, code, "Favorite toggled", gin.H{"status": state})
}

// Check godoc
// @Summary      Check a favorite
// @Description  Whether the job is in the caller's favorites; false without a job-seeker profile
// @Tags         favorites
// @Produce      json
// @Param        jobId  path      int  true  "Job post ID"
// @Success      200    {object}  response.Response
// @Router       /jobs/{jobId}/check-favorite [get]
// @Security     BearerAuth
func (h *FavoriteHandler) Check(c *gin.Context) {
	actor := middleware.GetActor(c)

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	isFavorite, err := h.favoriteUC.IsFavorite(c.Request.Context(), actor, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite checked", gin.H{"is_favorite": isFavorite})
}

// BulkCheckRequest is the request payload for checking several jobs at once
type BulkCheckRequest struct {
	JobIDs []int64 `json:"job_ids" binding:"required"`
}

// BulkCheck godoc
// @Summary      Bulk check favorites
// @Description  Membership map for a list of job ids; all false without a job-seeker profile
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        body  body      BulkCheckRequest  true  "Job ids"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /check-favorites [post]
// @Security     BearerAuth
func (h *FavoriteHandler) BulkCheck(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req BulkCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("A list of job_ids is required"))
		return
	}

	result, err := h.favoriteUC.BulkCheck(c.Request.Context(), actor, req.JobIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorites checked", result)
}
