package store

import (
	"time"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
	"github.com/stylohub/stylohub-api/internal/timezone"
)

// SeedState monta o dataset inicial do dashboard. Logout reconstrói
// tudo daqui — sessões não persistem nada.
func SeedState() *State {
	now := timezone.Now()
	today := now.Format("2006-01-02")
	tomorrow := now.Add(24 * time.Hour).Format("2006-01-02")

	return &State{
		User: dashboard.User{
			ID:          "user_seed",
			FirstName:   "Lucas",
			LastName:    "Almeida",
			Email:       "lucas.almeida@stylohub.app",
			City:        "São Paulo",
			Bio:         "Especialista em fade e navalhado.",
			AvatarURL:   "https://picsum.photos/128/128?random=seed",
			Level:       "Barbeiro Pro",
			XP:          2450,
			NextLevelXP: 3000,
			Rating:      4.9,
		},

		Appointments: []dashboard.Appointment{
			{
				ID:          "appt_seed_1",
				ClientName:  "Rafael Souza",
				Service:     "Corte Degradê",
				Date:        today,
				Time:        "14:00",
				Price:       45,
				DurationMin: 45,
				Status:      dashboard.StatusConfirmed,
				AvatarURL:   "https://picsum.photos/64/64?random=1",
				CreatedAt:   now,
			},
			{
				ID:          "appt_seed_2",
				ClientName:  "Thiago Mendes",
				Service:     "Barba Completa",
				Date:        today,
				Time:        "16:30",
				Price:       35,
				DurationMin: 30,
				Status:      dashboard.StatusScheduled,
				AvatarURL:   "https://picsum.photos/64/64?random=2",
				CreatedAt:   now,
			},
			{
				ID:          "appt_seed_3",
				ClientName:  "Bruno Carvalho",
				Service:     "Corte + Barba",
				Date:        tomorrow,
				Time:        "10:00",
				Price:       70,
				DurationMin: 75,
				Status:      dashboard.StatusScheduled,
				AvatarURL:   "https://picsum.photos/64/64?random=3",
				CreatedAt:   now,
			},
		},

		Courses: []dashboard.Course{
			{
				ID:       "course_fade",
				Title:    "Dominando o Fade",
				Progress: 0,
				Modules: []dashboard.Module{
					{
						ID:    "mod_fade_1",
						Title: "Fundamentos",
						Lessons: []dashboard.Lesson{
							{ID: "les_fade_1", Title: "Ferramentas e preparação", DurationMin: 12, XPReward: 50},
							{ID: "les_fade_2", Title: "Linhas de transição", DurationMin: 18, XPReward: 75},
						},
					},
					{
						ID:    "mod_fade_2",
						Title: "Técnicas avançadas",
						Lessons: []dashboard.Lesson{
							{ID: "les_fade_3", Title: "Low fade na navalha", DurationMin: 22, XPReward: 100},
							{ID: "les_fade_4", Title: "Acabamento e finalização", DurationMin: 15, XPReward: 75},
						},
					},
				},
			},
			{
				ID:       "course_gestao",
				Title:    "Gestão da Barbearia",
				Progress: 0,
				Modules: []dashboard.Module{
					{
						ID:    "mod_gestao_1",
						Title: "Precificação",
						Lessons: []dashboard.Lesson{
							{ID: "les_gestao_1", Title: "Calculando o preço do corte", DurationMin: 10, XPReward: 50},
							{ID: "les_gestao_2", Title: "Fidelização de clientes", DurationMin: 14, XPReward: 50},
						},
					},
				},
			},
		},

		Clients: []dashboard.Client{
			{
				ID:          "client_seed_1",
				Name:        "Rafael Souza",
				Phone:       "(11) 98765-4321",
				AvatarURL:   "https://picsum.photos/64/64?random=11",
				LastVisit:   "2025-08-14",
				TotalVisits: 12,
				TotalSpent:  540,
				Notes:       "Prefere máquina 1 na lateral.",
				History:     []string{"Corte Degradê", "Corte + Barba"},
			},
			{
				ID:          "client_seed_2",
				Name:        "Thiago Mendes",
				Phone:       "(11) 91234-5678",
				AvatarURL:   "https://picsum.photos/64/64?random=12",
				LastVisit:   "2025-08-02",
				TotalVisits: 5,
				TotalSpent:  175,
				Notes:       "Barba alinhada toda quinzena.",
				History:     []string{"Barba Completa"},
			},
		},

		Notifications:    []dashboard.InAppNotification{},
		NotificationJobs: []dashboard.NotificationJob{},

		CurrentView:  ViewLogin,
		DashboardTab: TabOverview,
	}
}
