package store

import (
	"fmt"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
)

// ======================================================
// JOB SCHEDULER (derived)
// ======================================================

// ProcessDueJobs varre os jobs pendentes contra o relógio, lido uma
// única vez por passada. Job vencido vira exatamente uma notificação
// (prefixada, mais recente primeiro) e é marcado processado — no
// máximo uma transição false→true, nunca rearmado. Job órfão (o
// agendamento referenciado sumiu) é marcado processado sem produzir
// nada. Passada sem job vencido não comita estado nem acorda listener.
func (s *Store) ProcessDueJobs() {
	s.apply(func(prev *State) *State {
		now := s.now()

		changed := false
		var fresh []dashboard.InAppNotification
		jobs := append([]dashboard.NotificationJob{}, prev.NotificationJobs...)

		for i := range jobs {
			job := jobs[i]
			if job.Processed || job.ScheduledFor.After(now) {
				continue
			}

			changed = true
			jobs[i].Processed = true

			idx := findAppointment(prev.Appointments, job.AppointmentID)
			if idx < 0 {
				continue // órfão: resolvido em silêncio
			}
			appt := prev.Appointments[idx]

			title, msg, kind := notificationFor(job.Type, appt)
			fresh = append(fresh, dashboard.InAppNotification{
				ID:            fmt.Sprintf("notif_%d_%s", now.UnixMilli(), job.ID),
				Title:         title,
				Message:       msg,
				Type:          kind,
				Timestamp:     now,
				AppointmentID: appt.ID,
			})
		}

		if !changed {
			return nil
		}

		next := *prev
		next.NotificationJobs = jobs
		next.Notifications = append(fresh, prev.Notifications...)
		return &next
	})
}

// notificationFor deriva título/mensagem/severidade só do tipo do job
// e, no lembrete de 2h, do status corrente do agendamento: sem
// confirmação na hora do aviso, a severidade sobe para warning.
func notificationFor(
	kind dashboard.JobType,
	appt dashboard.Appointment,
) (string, string, dashboard.NotificationType) {

	switch kind {
	case dashboard.JobConfirmRequest:
		return "Confirmação Enviada",
			fmt.Sprintf("Solicitação de confirmação enviada para %s.", appt.ClientName),
			dashboard.NotifInfo

	case dashboard.JobReminder24h:
		return "Lembrete de Amanhã",
			fmt.Sprintf("Lembrete de 24h enviado para %s.", appt.ClientName),
			dashboard.NotifInfo

	case dashboard.JobReminder2h:
		severity := dashboard.NotifInfo
		if appt.Status != dashboard.StatusConfirmed {
			severity = dashboard.NotifWarning
		}
		return "Cliente Chegando",
			fmt.Sprintf("Faltam 2h para o corte de %s. Status atual: %s", appt.ClientName, appt.Status),
			severity
	}

	return "", "", dashboard.NotifInfo
}

// ======================================================
// NOTIFICATION ACTIONS
// ======================================================

func (s *Store) MarkNotificationRead(id string) {
	s.apply(func(prev *State) *State {
		notifs := append([]dashboard.InAppNotification{}, prev.Notifications...)
		for i := range notifs {
			if notifs[i].ID == id {
				notifs[i].Read = true
			}
		}

		next := *prev
		next.Notifications = notifs
		return &next
	})
}

func (s *Store) ClearAllNotifications() {
	s.apply(func(prev *State) *State {
		next := *prev
		next.Notifications = []dashboard.InAppNotification{}
		return &next
	})
}
