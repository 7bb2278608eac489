package v1

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PremiumHandler struct {
	premiumUC domain.PremiumUsecase
}

// NewPremiumHandler registers premium status routes
func NewPremiumHandler(r *gin.RouterGroup, premiumUC domain.PremiumUsecase) {
	handler := &PremiumHandler{premiumUC: premiumUC}

	r.POST("/toggle-premium", handler.Toggle)
	r.GET("/premium-status", handler.Status)
}

// Toggle godoc
// @Summary      Toggle premium status
// @Description  Flip the premium flag on the caller's profile
// @Tags         premium
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PremiumStatus}
// @Failure      404  {object}  response.Response
// @Router       /toggle-premium [post]
// @Security     BearerAuth
func (h *PremiumHandler) Toggle(c *gin.Context) {
	actor := middleware.GetActor(c)

	status, err := h.premiumUC.Toggle(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Premium status updated successfully", status)
}

// Status godoc
// @Summary      Get premium status
// @Description  Read the premium flag and since-when timestamp for the caller's profile
// @Tags         premium
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PremiumStatus}
// @Failure      404  {object}  response.Response
// @Router       /premium-status [get]
// @Security     BearerAuth
func (h *PremiumHandler) Status(c *gin.Context) {
	actor := middleware.GetActor(c)

	status, err := h.premiumUC.Status(c.Request.Context(), actor)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Premium status retrieved", status)
}
