package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stylohub/stylohub-api/internal/httperr"
	"github.com/stylohub/stylohub-api/internal/httpresp"
	"github.com/stylohub/stylohub-api/internal/middleware"
	ucOnboarding "github.com/stylohub/stylohub-api/internal/usecase/onboarding"
)

type OnboardingHandler struct {
	submit *ucOnboarding.Submit
}

func NewOnboardingHandler(submit *ucOnboarding.Submit) *OnboardingHandler {
	return &OnboardingHandler{submit: submit}
}

// ======================================================
// REQUEST
// ======================================================

// Campos numéricos como ponteiros: ausência e tipo errado ("forty")
// caem ambos no erro de bind → 400, sem linha escrita.
type OnboardingRequest struct {
	AvgPrice      *float64 `json:"avgPrice"`
	ClientsPerDay *float64 `json:"clientsPerDay"`
	DaysPerWeek   *float64 `json:"daysPerWeek"`

	FirstName *string `json:"firstName"`
	FullName  *string `json:"fullName"`
	Email     *string `json:"email"`
}

// ======================================================
// SUBMIT
// ======================================================

func (h *OnboardingHandler) Submit(c *gin.Context) {
	clerkUserID := c.MustGet(middleware.ContextClerkUserID).(string)

	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_onboarding_payload", "Dados inválidos no onboarding.")
		return
	}

	if req.AvgPrice == nil || req.ClientsPerDay == nil || req.DaysPerWeek == nil {
		httperr.BadRequest(c, "invalid_onboarding_payload", "Dados inválidos no onboarding.")
		return
	}

	row, err := h.submit.Execute(c.Request.Context(), ucOnboarding.SubmitInput{
		ClerkUserID:   clerkUserID,
		AvgPrice:      *req.AvgPrice,
		ClientsPerDay: int(*req.ClientsPerDay),
		DaysPerWeek:   int(*req.DaysPerWeek),
		Email:         req.Email,
		FirstName:     req.FirstName,
		FullName:      req.FullName,
	})
	if err != nil {
		httperr.Internal(c, "onboarding_save_failed", "Erro ao salvar onboarding no banco.")
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"barber":  row,
	})
}
