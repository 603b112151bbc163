package dashboard

import "time"

// ===============================
// Notification Jobs
// ===============================

type JobType string

const (
	JobConfirmRequest JobType = "confirm_request"
	JobReminder24h    JobType = "reminder_24h"
	JobReminder2h     JobType = "reminder_2h"
)

// NotificationJob é uma unidade one-shot de trabalho adiado. O
// AppointmentID é referência fraca: serve só para lookup, apagar o
// agendamento não apaga o job (o scan descarta o órfão em silêncio).
type NotificationJob struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	Type          JobType   `json:"type"`
	ScheduledFor  time.Time `json:"scheduled_for"`
	Processed     bool      `json:"processed"`
}

// ===============================
// In-App Notifications
// ===============================

type NotificationType string

const (
	NotifInfo    NotificationType = "info"
	NotifWarning NotificationType = "warning"
	NotifAlert   NotificationType = "alert"
)

type InAppNotification struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Type          NotificationType `json:"type"`
	Timestamp     time.Time        `json:"timestamp"`
	Read          bool             `json:"read"`
	AppointmentID string           `json:"appointment_id"`
}
