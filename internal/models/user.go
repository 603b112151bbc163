package models

import "time"

// User é a conta de identidade (login/senha) que emite os tokens.
// O vínculo com o perfil de negócio é feito pelo ExternalID, que viaja
// como `sub` do token e como `clerk_user_id` da linha de perfil.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ExternalID string `gorm:"size:100;uniqueIndex;not null" json:"external_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
