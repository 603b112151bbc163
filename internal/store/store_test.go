package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestSubscribeNotifiesAfterEveryMutation(t *testing.T) {
	s := New()

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.SetDashboardTab(TabFinance)
	s.SetCurrentView(ViewDashboard)
	assert.Equal(t, 2, calls)

	unsubscribe()
	s.SetDashboardTab(TabSchedule)
	assert.Equal(t, 2, calls, "listener removido não pode ser notificado")
}

func TestListenerObservesCommittedSnapshot(t *testing.T) {
	s := New()

	var seen ViewState
	s.Subscribe(func() {
		seen = s.Snapshot().CurrentView
	})

	s.SetCurrentView(ViewDashboard)
	assert.Equal(t, ViewDashboard, seen, "listener roda depois da troca do snapshot")
}

func TestSnapshotImmutability(t *testing.T) {
	s := New()
	before := s.Snapshot()
	beforeTab := before.DashboardTab

	s.SetDashboardTab(TabAcademy)

	assert.Equal(t, beforeTab, before.DashboardTab, "snapshot publicado não muda")
	assert.Equal(t, TabAcademy, s.Snapshot().DashboardTab)
}

func TestLogoutResetsToSeed(t *testing.T) {
	now := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
	s := New(WithClock(fixedClock(now)))

	_, err := s.CreateAppointment(CreateAppointmentInput{
		ClientName: "Pedro",
		Service:    "Corte",
		Date:       "2025-09-02",
		Time:       "15:00",
		Price:      40,
	})
	require.NoError(t, err)
	s.AddClient(AddClientInput{Name: "Pedro", Phone: "(11) 90000-0000"})
	s.UpdateXP(300)
	s.SetDashboardTab(TabFinance)

	s.Logout()

	seed := SeedState()
	got := s.Snapshot()

	assert.Equal(t, seed.User.XP, got.User.XP)
	assert.Len(t, got.Appointments, len(seed.Appointments))
	assert.Len(t, got.Clients, len(seed.Clients))
	assert.Empty(t, got.Notifications)
	assert.Empty(t, got.NotificationJobs)
	assert.Equal(t, ViewLogin, got.CurrentView)
	assert.Equal(t, TabOverview, got.DashboardTab)
}

func TestRegisterUserResetsProfileAndMovesToOnboarding(t *testing.T) {
	s := New()
	s.UpdateXP(500)

	before := s.Snapshot().User

	s.RegisterUser(RegisterUserInput{
		FirstName: "João",
		LastName:  "Silva",
		Email:     "joao@exemplo.com.br",
		City:      "Curitiba",
	})

	u := s.Snapshot().User
	assert.Equal(t, "Iniciante", u.Level)
	assert.Equal(t, 0, u.XP)
	assert.Equal(t, 1000, u.NextLevelXP)
	assert.Equal(t, "Novo Barbeiro", u.Bio)
	assert.InDelta(t, 5.0, u.Rating, 0.001)
	assert.Equal(t, ViewOnboarding, s.Snapshot().CurrentView)

	// Cadastro sobrescreve o perfil, não cria outro usuário: id e
	// avatar correntes sobrevivem.
	assert.Equal(t, before.ID, u.ID)
	assert.Equal(t, before.AvatarURL, u.AvatarURL)
}

func TestCompleteOnboardingStoresPreferences(t *testing.T) {
	s := New()

	s.CompleteOnboarding(dashboard.Preferences{
		AvgPrice:      45,
		ClientsPerDay: 8,
		DaysPerWeek:   6,
	})

	st := s.Snapshot()
	require.NotNil(t, st.User.Preferences)
	assert.InDelta(t, 45.0, st.User.Preferences.AvgPrice, 0.001)
	assert.Equal(t, ViewDashboard, st.CurrentView)
}

func TestAddClientPrepends(t *testing.T) {
	s := New()
	seedLen := len(s.Snapshot().Clients)

	created := s.AddClient(AddClientInput{Name: "Novo", Phone: "(11) 95555-1234"})
	require.NotNil(t, created)

	clients := s.Snapshot().Clients
	require.Len(t, clients, seedLen+1)
	assert.Equal(t, created.ID, clients[0].ID)
	assert.Equal(t, "-", clients[0].LastVisit)
	assert.Equal(t, 0, clients[0].TotalVisits)
	assert.Equal(t, "Novo cliente cadastrado.", clients[0].Notes)
}

func TestUpdateUserPartialFields(t *testing.T) {
	s := New()
	emailBefore := s.Snapshot().User.Email

	bio := "Navalhado raiz."
	s.UpdateUser(UpdateUserInput{Bio: &bio})

	u := s.Snapshot().User
	assert.Equal(t, "Navalhado raiz.", u.Bio)
	assert.Equal(t, emailBefore, u.Email, "campos não enviados ficam como estavam")
}
