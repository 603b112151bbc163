package models

import "time"

// Barber é a única linha durável do sistema: o perfil de negócio do
// barbeiro, chaveado pelo id do provedor de identidade (uma linha por
// identidade, garantida por uniqueIndex + upsert).
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClerkUserID string `gorm:"size:100;uniqueIndex;not null" json:"clerk_user_id"`

	Email     *string `gorm:"size:100" json:"email"`
	FirstName *string `gorm:"size:100" json:"first_name"`
	FullName  *string `gorm:"size:150" json:"full_name"`

	AvgPrice      float64 `json:"avg_price"`
	ClientsPerDay int     `json:"clients_per_day"`
	DaysPerWeek   int     `json:"days_per_week"`

	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
