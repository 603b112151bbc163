package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
	"github.com/stylohub/stylohub-api/internal/httperr"
	"github.com/stylohub/stylohub-api/internal/timezone"
)

const (
	defaultDurationMin = 45
	completeXP         = 50

	confirmRequestDelay = 2 * time.Second
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName           string
	Service              string
	Date                 string // 2006-01-02
	Time                 string // 15:04
	Price                float64
	CancellationAccepted bool
}

// ======================================================
// CREATE
// ======================================================

// CreateAppointment agenda um atendimento e arma os jobs de
// notificação: sempre um confirm_request para daqui a 2s; lembretes de
// 24h e 2h apenas quando as janelas ainda estão no futuro. De 1 a 3
// jobs por agendamento, conforme a antecedência.
func (s *Store) CreateAppointment(in CreateAppointmentInput) (*dashboard.Appointment, error) {
	apptTime, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(""),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	var created *dashboard.Appointment

	s.apply(func(prev *State) *State {
		now := s.now()
		id := uuid.NewString()

		appt := dashboard.Appointment{
			ID:                   id,
			ClientName:           in.ClientName,
			Service:              in.Service,
			Date:                 in.Date,
			Time:                 in.Time,
			Price:                in.Price,
			DurationMin:          defaultDurationMin,
			Status:               dashboard.StatusScheduled,
			AvatarURL:            fmt.Sprintf("https://picsum.photos/64/64?random=%s", id),
			CancellationAccepted: in.CancellationAccepted,
			CreatedAt:            now,
		}

		jobs := []dashboard.NotificationJob{
			{
				ID:            fmt.Sprintf("job_%s_confirm", id),
				AppointmentID: id,
				Type:          dashboard.JobConfirmRequest,
				ScheduledFor:  now.Add(confirmRequestDelay),
			},
		}

		if at := apptTime.Add(-24 * time.Hour); at.After(now) {
			jobs = append(jobs, dashboard.NotificationJob{
				ID:            fmt.Sprintf("job_%s_24h", id),
				AppointmentID: id,
				Type:          dashboard.JobReminder24h,
				ScheduledFor:  at,
			})
		}

		if at := apptTime.Add(-2 * time.Hour); at.After(now) {
			jobs = append(jobs, dashboard.NotificationJob{
				ID:            fmt.Sprintf("job_%s_2h", id),
				AppointmentID: id,
				Type:          dashboard.JobReminder2h,
				ScheduledFor:  at,
			})
		}

		next := *prev
		next.Appointments = append(append([]dashboard.Appointment{}, prev.Appointments...), appt)
		next.NotificationJobs = append(append([]dashboard.NotificationJob{}, prev.NotificationJobs...), jobs...)

		created = &appt
		return &next
	})

	return created, nil
}

// ======================================================
// STATUS ACTIONS
// ======================================================

// setAppointmentStatus troca o status de um agendamento construindo a
// coleção nova. Id desconhecido degrada para no-op, sem erro.
func (s *Store) setAppointmentStatus(
	id string,
	mutate func(a *dashboard.Appointment),
) {
	s.apply(func(prev *State) *State {
		idx := findAppointment(prev.Appointments, id)
		if idx < 0 {
			return nil
		}

		appts := append([]dashboard.Appointment{}, prev.Appointments...)
		mutate(&appts[idx])

		next := *prev
		next.Appointments = appts
		return &next
	})
}

func (s *Store) ConfirmAppointment(id string) {
	now := s.now()
	s.setAppointmentStatus(id, func(a *dashboard.Appointment) {
		a.Status = dashboard.StatusConfirmed
		a.ConfirmedAt = &now
	})
}

// CompleteAppointment é idempotente: concluir um agendamento já
// concluído não premia XP de novo.
func (s *Store) CompleteAppointment(id string) {
	s.apply(func(prev *State) *State {
		idx := findAppointment(prev.Appointments, id)
		if idx < 0 || prev.Appointments[idx].Status == dashboard.StatusCompleted {
			return nil
		}

		appts := append([]dashboard.Appointment{}, prev.Appointments...)
		appts[idx].Status = dashboard.StatusCompleted

		next := *prev
		next.Appointments = appts
		next.User = awardXP(prev.User, completeXP)
		return &next
	})
}

func (s *Store) MarkNoShow(id string) {
	s.setAppointmentStatus(id, func(a *dashboard.Appointment) {
		a.Status = dashboard.StatusNoShow
	})
}

func (s *Store) CancelAppointment(id string) {
	s.setAppointmentStatus(id, func(a *dashboard.Appointment) {
		a.Status = dashboard.StatusCancelled
	})
}

// ======================================================
// HELPERS
// ======================================================

func findAppointment(appts []dashboard.Appointment, id string) int {
	for i := range appts {
		if appts[i].ID == id {
			return i
		}
	}
	return -1
}

func awardXP(u dashboard.User, amount int) dashboard.User {
	u.XP += amount
	return u
}
