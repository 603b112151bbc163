package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
	"github.com/stylohub/stylohub-api/internal/timezone"
)

// bookAt cria um agendamento com horário now+lead e devolve os jobs
// armados para ele.
func bookAt(t *testing.T, s *Store, now time.Time, lead time.Duration) (*dashboard.Appointment, []dashboard.NotificationJob) {
	t.Helper()

	at := now.Add(lead).In(timezone.Location(""))
	appt, err := s.CreateAppointment(CreateAppointmentInput{
		ClientName: "Rafael",
		Service:    "Corte Degradê",
		Date:       at.Format("2006-01-02"),
		Time:       at.Format("15:04"),
		Price:      40,
	})
	require.NoError(t, err)

	var jobs []dashboard.NotificationJob
	for _, j := range s.Snapshot().NotificationJobs {
		if j.AppointmentID == appt.ID {
			jobs = append(jobs, j)
		}
	}
	return appt, jobs
}

func TestCreateAppointmentDefaults(t *testing.T) {
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))

	appt, _ := bookAt(t, s, now, 30*time.Hour)

	assert.Equal(t, dashboard.StatusScheduled, appt.Status)
	assert.Equal(t, 45, appt.DurationMin)
	assert.NotEmpty(t, appt.AvatarURL)
	assert.Equal(t, now, appt.CreatedAt)
}

func TestCreateAppointmentInvalidDate(t *testing.T) {
	s := New()

	_, err := s.CreateAppointment(CreateAppointmentInput{
		ClientName: "Rafael",
		Service:    "Corte",
		Date:       "30/08/2025",
		Time:       "14h",
		Price:      40,
	})
	assert.Error(t, err)
}

func TestJobPolicyFarBooking(t *testing.T) {
	// 30h de antecedência: confirm + 24h + 2h.
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))

	appt, jobs := bookAt(t, s, now, 30*time.Hour)
	require.Len(t, jobs, 3)

	byType := map[dashboard.JobType]dashboard.NotificationJob{}
	for _, j := range jobs {
		byType[j.Type] = j
	}

	apptTime := now.Add(30 * time.Hour)

	confirm := byType[dashboard.JobConfirmRequest]
	assert.Equal(t, now.Add(2*time.Second), confirm.ScheduledFor)
	assert.False(t, confirm.Processed)
	assert.Equal(t, "job_"+appt.ID+"_confirm", confirm.ID)

	assert.Equal(t, apptTime.Add(-24*time.Hour), byType[dashboard.JobReminder24h].ScheduledFor)
	assert.Equal(t, apptTime.Add(-2*time.Hour), byType[dashboard.JobReminder2h].ScheduledFor)
}

func TestJobPolicyNearBooking(t *testing.T) {
	// 1h de antecedência: as janelas de 24h e 2h já passaram, só o
	// confirm é armado.
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))

	_, jobs := bookAt(t, s, now, time.Hour)
	require.Len(t, jobs, 1)
	assert.Equal(t, dashboard.JobConfirmRequest, jobs[0].Type)
}

func TestJobPolicyMidBooking(t *testing.T) {
	// 12h: cabe o lembrete de 2h mas não o de 24h.
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))

	_, jobs := bookAt(t, s, now, 12*time.Hour)
	require.Len(t, jobs, 2)

	types := []dashboard.JobType{jobs[0].Type, jobs[1].Type}
	assert.Contains(t, types, dashboard.JobConfirmRequest)
	assert.Contains(t, types, dashboard.JobReminder2h)
}

func TestConfirmAppointmentStampsTime(t *testing.T) {
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))

	appt, _ := bookAt(t, s, now, 30*time.Hour)
	s.ConfirmAppointment(appt.ID)

	got := s.Snapshot().Appointments
	idx := findAppointment(got, appt.ID)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, dashboard.StatusConfirmed, got[idx].Status)
	require.NotNil(t, got[idx].ConfirmedAt)
	assert.Equal(t, now, *got[idx].ConfirmedAt)
}

func TestCompleteAppointmentAwardsXPOnce(t *testing.T) {
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))

	appt, _ := bookAt(t, s, now, 30*time.Hour)
	xpBefore := s.Snapshot().User.XP

	s.CompleteAppointment(appt.ID)
	assert.Equal(t, xpBefore+50, s.Snapshot().User.XP)

	// Idempotente: repetir não premia de novo.
	s.CompleteAppointment(appt.ID)
	assert.Equal(t, xpBefore+50, s.Snapshot().User.XP)
}

func TestCompleteAppointmentSecondCallIsNoOp(t *testing.T) {
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))
	appt, _ := bookAt(t, s, now, 30*time.Hour)

	s.CompleteAppointment(appt.ID)

	calls := 0
	s.Subscribe(func() { calls++ })
	s.CompleteAppointment(appt.ID)
	assert.Equal(t, 0, calls, "segunda conclusão não comita nem notifica")
}

func TestUnknownAppointmentIDDegradesToNoOp(t *testing.T) {
	s := New()

	calls := 0
	s.Subscribe(func() { calls++ })

	s.CompleteAppointment("nope")
	s.CancelAppointment("nope")
	s.MarkNoShow("nope")
	assert.Equal(t, 0, calls)
}

func TestCancelAndNoShow(t *testing.T) {
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, timezone.Location(""))
	s := New(WithClock(fixedClock(now)))

	a1, _ := bookAt(t, s, now, 30*time.Hour)
	a2, _ := bookAt(t, s, now, 31*time.Hour)

	s.CancelAppointment(a1.ID)
	s.MarkNoShow(a2.ID)

	appts := s.Snapshot().Appointments
	assert.Equal(t, dashboard.StatusCancelled, appts[findAppointment(appts, a1.ID)].Status)
	assert.Equal(t, dashboard.StatusNoShow, appts[findAppointment(appts, a2.ID)].Status)
}
