package dashboard

import "time"

// ===============================
// Appointment Status
// ===============================

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment é o agendamento exibido no dashboard. Vive apenas em
// memória; nenhuma transição de status é validada além dos checks de
// idempotência explícitos nas ações (comportamento herdado do produto).
type Appointment struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"client_name"`
	Service     string            `json:"service"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Price       float64           `json:"price"`
	DurationMin int               `json:"duration_min"`
	Status      AppointmentStatus `json:"status"`
	AvatarURL   string            `json:"avatar_url"`

	CancellationAccepted bool `json:"cancellation_accepted"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}
