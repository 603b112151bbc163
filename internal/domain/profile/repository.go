package profile

import (
	"context"

	"github.com/stylohub/stylohub-api/internal/models"
)

type Repository interface {
	// -------- Lookup --------
	GetByClerkUserID(
		ctx context.Context,
		clerkUserID string,
	) (*models.Barber, error)

	// -------- Upsert (uma linha por identidade) --------
	Upsert(
		ctx context.Context,
		row *models.Barber,
	) (*models.Barber, error)

	// -------- Avatar --------
	SetAvatarURL(
		ctx context.Context,
		clerkUserID string,
		url string,
	) error
}
