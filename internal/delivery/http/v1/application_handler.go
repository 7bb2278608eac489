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

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.POST("/jobs/:jobId/apply", handler.Submit)
	r.GET("/jobseeker/applications", handler.ListMine)
	r.GET("/jobposts/:jobId/applications", handler.ListByJob)
	r.GET("/applications/:id", handler.Get)
	r.GET("/applications/:id/history", handler.History)
	r.PATCH("/applications/:id/update-status", handler.UpdateStatus)
}

// SubmitApplicationRequest is the request payload for applying to a job
type SubmitApplicationRequest struct {
	CvURL          string `json:"cv_url"`
	CoverLetterURL string `json:"cover_letter_url"`
}

// Submit godoc
// @Summary      Apply to a job
// @Description  Submit an application for a job post (job seeker only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId  path      int                       true  "Job post ID"
// @Param        body   body      SubmitApplicationRequest  false "Attachment URLs"
// @Success      201    {object}  response.Response{data=domain.JobApplication}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /jobs/{jobId}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	actor := middleware.GetActor(c)

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), actor, jobID, req.CvURL, req.CoverLetterURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListMine godoc
// @Summary      List own applications
// @Description  Get all applications submitted by the current job seeker
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobApplication}
// @Failure      403  {object}  response.Response
// @Router       /jobseeker/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	actor := middleware.GetActor(c)

	applications, err := h.applicationUC.ListMine(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListByJob godoc
// @Summary      List applications for a job
// @Description  Get all applications for one of the employer's job posts, premium candidates first
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job post ID"
// @Success      200    {object}  response.Response{data=[]domain.JobApplication}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobposts/{jobId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	actor := middleware.GetActor(c)

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applications, err := h.applicationUC.ListByJob(c.Request.Context(), actor, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// Get godoc
// @Summary      Get application detail
// @Description  Get one application; only its candidate or employer may read it
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.JobApplication}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	actor := middleware.GetActor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	app, err := h.applicationUC.Get(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// History godoc
// @Summary      Get application status history
// @Description  Get the status audit trail newest-first; visible to both parties
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=[]domain.StatusHistoryEntry}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/history [get]
// @Security     BearerAuth
func (h *ApplicationHandler) History(c *gin.Context) {
	actor := middleware.GetActor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	history, err := h.applicationUC.History(c.Request.Context(), actor, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status history retrieved", history)
}

// UpdateStatusRequest is the request payload for updating application status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Set one of received/in_progress/accepted/rejected (owning employer only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response{data=domain.JobApplication}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/update-status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actor := middleware.GetActor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
