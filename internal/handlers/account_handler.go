package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ayurcare_backend/internal/middleware"
	"ayurcare_backend/internal/services"
	"ayurcare_backend/internal/services/dto"
	"ayurcare_backend/pkg/apperrors"
)

type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewAccountHandler(base *BaseHandler, accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
	}
}

// RegisterRoutes registers the account routes on an authenticated group.
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.Me)
	rg.GET("/doctors", h.ListDoctors)

	patients := rg.Group("/patients")
	{
		patients.GET("", middleware.RequireDoctor(), h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id/profile", h.UpdatePatientProfile)
		patients.PUT("/:id/doctor", middleware.RequireDoctor(), h.AssignDoctor)
	}
}

func (h *AccountHandler) Me(c *gin.Context) {
	account := middleware.CurrentAccount(c)
	if account == nil {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Could not validate credentials"))
		return
	}
	c.JSON(http.StatusOK, account.Public())
}

func (h *AccountHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.accountService.ListDoctors(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *AccountHandler) ListPatients(c *gin.Context) {
	patients, err := h.accountService.ListPatients(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *AccountHandler) GetPatient(c *gin.Context) {
	actor := middleware.CurrentAccount(c)
	patient, err := h.accountService.GetPatient(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *AccountHandler) UpdatePatientProfile(c *gin.Context) {
	var req dto.UpdatePatientProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor := middleware.CurrentAccount(c)
	patient, err := h.accountService.UpdatePatientProfile(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *AccountHandler) AssignDoctor(c *gin.Context) {
	var req dto.AssignDoctorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	patient, err := h.accountService.AssignDoctor(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}
