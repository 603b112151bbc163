package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
	"github.com/stylohub/stylohub-api/internal/httperr"
	"github.com/stylohub/stylohub-api/internal/httpresp"
	"github.com/stylohub/stylohub-api/internal/store"
)

// DashboardHandler é adaptador fino sobre o store: valida a request,
// chama a ação e devolve o snapshot novo. Nenhuma ação do store faz
// I/O; o estado do dashboard vive e morre com o processo.
type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// ======================================================
// STATE
// ======================================================

func (h *DashboardHandler) GetState(c *gin.Context) {
	httpresp.OK(c, h.store.Snapshot())
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *DashboardHandler) ListAppointments(c *gin.Context) {
	httpresp.List(c, h.store.Snapshot().Appointments)
}

type CreateAppointmentRequest struct {
	ClientName           string  `json:"client_name" binding:"required"`
	Service              string  `json:"service" binding:"required"`
	Date                 string  `json:"date" binding:"required"`
	Time                 string  `json:"time" binding:"required"`
	Price                float64 `json:"price" binding:"required"`
	CancellationAccepted bool    `json:"cancellation_accepted"`
}

func (h *DashboardHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	appt, err := h.store.CreateAppointment(store.CreateAppointmentInput{
		ClientName:           req.ClientName,
		Service:              req.Service,
		Date:                 req.Date,
		Time:                 req.Time,
		Price:                req.Price,
		CancellationAccepted: req.CancellationAccepted,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, appt)
}

func (h *DashboardHandler) ConfirmAppointment(c *gin.Context) {
	h.store.ConfirmAppointment(c.Param("id"))
	httpresp.OK(c, h.store.Snapshot())
}

func (h *DashboardHandler) CompleteAppointment(c *gin.Context) {
	h.store.CompleteAppointment(c.Param("id"))
	httpresp.OK(c, h.store.Snapshot())
}

func (h *DashboardHandler) MarkNoShow(c *gin.Context) {
	h.store.MarkNoShow(c.Param("id"))
	httpresp.OK(c, h.store.Snapshot())
}

func (h *DashboardHandler) CancelAppointment(c *gin.Context) {
	h.store.CancelAppointment(c.Param("id"))
	httpresp.OK(c, h.store.Snapshot())
}

// ======================================================
// ACADEMY
// ======================================================

func (h *DashboardHandler) CompleteLesson(c *gin.Context) {
	h.store.CompleteLesson(
		c.Param("courseId"),
		c.Param("moduleId"),
		c.Param("lessonId"),
	)
	httpresp.OK(c, h.store.Snapshot())
}

// ======================================================
// CLIENTS
// ======================================================

func (h *DashboardHandler) ListClients(c *gin.Context) {
	httpresp.List(c, h.store.Snapshot().Clients)
}

type AddClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (h *DashboardHandler) AddClient(c *gin.Context) {
	var req AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client := h.store.AddClient(store.AddClientInput{
		Name:  req.Name,
		Phone: req.Phone,
	})

	httpresp.Created(c, client)
}

// ======================================================
// USER
// ======================================================

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	City      *string `json:"city"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *DashboardHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.store.UpdateUser(store.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		City:      req.City,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	httpresp.OK(c, h.store.Snapshot())
}

type CompletePreferencesRequest struct {
	AvgPrice      float64 `json:"avg_price" binding:"required"`
	ClientsPerDay int     `json:"clients_per_day" binding:"required"`
	DaysPerWeek   int     `json:"days_per_week" binding:"required"`
}

func (h *DashboardHandler) CompletePreferences(c *gin.Context) {
	var req CompletePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	h.store.CompleteOnboarding(dashboard.Preferences{
		AvgPrice:      req.AvgPrice,
		ClientsPerDay: req.ClientsPerDay,
		DaysPerWeek:   req.DaysPerWeek,
	})
	httpresp.OK(c, h.store.Snapshot())
}

func (h *DashboardHandler) Logout(c *gin.Context) {
	h.store.Logout()
	httpresp.OK(c, h.store.Snapshot())
}

// ======================================================
// NOTIFICATIONS
// ======================================================

func (h *DashboardHandler) MarkNotificationRead(c *gin.Context) {
	h.store.MarkNotificationRead(c.Param("id"))
	httpresp.OK(c, h.store.Snapshot())
}

func (h *DashboardHandler) ClearNotifications(c *gin.Context) {
	h.store.ClearAllNotifications()
	httpresp.OK(c, h.store.Snapshot())
}
