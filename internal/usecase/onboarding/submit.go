package onboarding

import (
	"context"

	"github.com/stylohub/stylohub-api/internal/cache"
	"github.com/stylohub/stylohub-api/internal/domain/profile"
	"github.com/stylohub/stylohub-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitInput struct {
	ClerkUserID string

	AvgPrice      float64
	ClientsPerDay int
	DaysPerWeek   int

	Email     *string
	FirstName *string
	FullName  *string
}

// ======================================================
// USE CASE
// ======================================================

type Submit struct {
	repo  profile.Repository
	cache *cache.ProfileCache
}

func NewSubmit(repo profile.Repository, cache *cache.ProfileCache) *Submit {
	return &Submit{
		repo:  repo,
		cache: cache,
	}
}

// Execute grava o perfil via upsert (uma linha por identidade,
// last-write-wins) e invalida o cache daquela identidade.
func (uc *Submit) Execute(
	ctx context.Context,
	in SubmitInput,
) (*models.Barber, error) {

	row := &models.Barber{
		ClerkUserID:   in.ClerkUserID,
		Email:         in.Email,
		FirstName:     in.FirstName,
		FullName:      in.FullName,
		AvgPrice:      in.AvgPrice,
		ClientsPerDay: in.ClientsPerDay,
		DaysPerWeek:   in.DaysPerWeek,
	}

	saved, err := uc.repo.Upsert(ctx, row)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.ClerkUserID)

	return saved, nil
}
