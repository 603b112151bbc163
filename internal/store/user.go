package store

import (
	"github.com/google/uuid"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
)

// ======================================================
// AUTH / USER
// ======================================================

func (s *Store) Login() {
	s.SetCurrentView(ViewDashboard)
}

// Logout reconstrói o snapshot inicial inteiro: agendamentos,
// notificações e jobs da sessão são descartados junto.
func (s *Store) Logout() {
	s.apply(func(prev *State) *State {
		return s.seed()
	})
}

type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	City      string
}

// RegisterUser sobrescreve os campos de cadastro e zera a progressão;
// id e avatar do usuário corrente são preservados.
func (s *Store) RegisterUser(in RegisterUserInput) {
	s.apply(func(prev *State) *State {
		user := prev.User
		user.FirstName = in.FirstName
		user.LastName = in.LastName
		user.Email = in.Email
		user.City = in.City
		user.Bio = "Novo Barbeiro"
		user.Level = "Iniciante"
		user.XP = 0
		user.NextLevelXP = 1000
		user.Rating = 5.0

		next := *prev
		next.User = user
		next.CurrentView = ViewOnboarding
		return &next
	})
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	City      *string
	Bio       *string
	AvatarURL *string
}

func (s *Store) UpdateUser(in UpdateUserInput) {
	s.apply(func(prev *State) *State {
		user := prev.User
		if in.FirstName != nil {
			user.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			user.LastName = *in.LastName
		}
		if in.Email != nil {
			user.Email = *in.Email
		}
		if in.City != nil {
			user.City = *in.City
		}
		if in.Bio != nil {
			user.Bio = *in.Bio
		}
		if in.AvatarURL != nil {
			user.AvatarURL = *in.AvatarURL
		}

		next := *prev
		next.User = user
		return &next
	})
}

func (s *Store) UpdateXP(amount int) {
	s.apply(func(prev *State) *State {
		next := *prev
		next.User = awardXP(prev.User, amount)
		return &next
	})
}

func (s *Store) CompleteOnboarding(prefs dashboard.Preferences) {
	s.apply(func(prev *State) *State {
		user := prev.User
		user.Preferences = &prefs

		next := *prev
		next.User = user
		next.CurrentView = ViewDashboard
		return &next
	})
}

// ======================================================
// CLIENTS
// ======================================================

type AddClientInput struct {
	Name  string
	Phone string
}

// AddClient prepende o cliente novo à lista.
func (s *Store) AddClient(in AddClientInput) *dashboard.Client {
	var created *dashboard.Client

	s.apply(func(prev *State) *State {
		id := uuid.NewString()
		client := dashboard.Client{
			ID:        id,
			Name:      in.Name,
			Phone:     in.Phone,
			AvatarURL: "https://picsum.photos/64/64?random=" + id,
			LastVisit: "-",
			Notes:     "Novo cliente cadastrado.",
			History:   []string{},
		}

		next := *prev
		next.Clients = append([]dashboard.Client{client}, prev.Clients...)

		created = &client
		return &next
	})

	return created
}
