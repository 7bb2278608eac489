package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentUC domain.AppointmentUsecase
}

// NewAppointmentHandler registers appointment routes
func NewAppointmentHandler(r *gin.RouterGroup, appointmentUC domain.AppointmentUsecase) {
	handler := &AppointmentHandler{appointmentUC: appointmentUC}

	r.POST("/appointments", handler.Create)
	r.GET("/user-appointments", handler.ListForUser)
	r.PATCH("/appointments/:id/respond", handler.Respond)
}

// CreateAppointmentRequest is the request payload for scheduling an appointment
type CreateAppointmentRequest struct {
	ApplicationID   int64     `json:"job_application" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
	Description     string    `json:"description" binding:"required"`
}

// Create godoc
// @Summary      Create an appointment
// @Description  Schedule an appointment against one of the employer's applications
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      CreateAppointmentRequest  true  "Appointment data"
// @Success      201   {object}  response.Response{data=domain.Appointment}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /appointments [post]
// @Security     BearerAuth
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	appt, err := h.appointmentUC.Create(c.Request.Context(), actor, domain.CreateAppointmentInput{
		ApplicationID:   req.ApplicationID,
		AppointmentTime: req.AppointmentTime,
		Description:     req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Appointment created", appt)
}

// ListForUser godoc
// @Summary      List appointments
// @Description  Employer view or job-seeker view depending on the caller's profile kind
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Appointment}
// @Failure      404  {object}  response.Response
// @Router       /user-appointments [get]
// @Security     BearerAuth
func (h *AppointmentHandler) ListForUser(c *gin.Context) {
	actor := middleware.GetActor(c)

	appointments, err := h.appointmentUC.ListForUser(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Appointments retrieved", appointments)
}

// RespondAppointmentRequest is the request payload for answering an appointment
type RespondAppointmentRequest struct {
	Status          string `json:"status" binding:"required"`
	ResponseMessage string `json:"response_message"`
}

// Respond godoc
// @Summary      Respond to an appointment
// @Description  Accept or reject a scheduled appointment (owning job seeker only)
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "Appointment ID"
// @Param        body  body      RespondAppointmentRequest  true  "Response"
// @Success      200   {object}  response.Response{data=domain.Appointment}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /appointments/{id}/respond [patch]
// @Security     BearerAuth
func (h *AppointmentHandler) Respond(c *gin.Context) {
	actor := middleware.GetActor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid appointment ID"))
		return
	}

	var req RespondAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	appt, err := h.appointmentUC.Respond(c.Request.Context(), actor, id, req.Status, req.ResponseMessage)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Appointment response recorded", appt)
}
