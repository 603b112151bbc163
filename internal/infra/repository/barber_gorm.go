package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stylohub/stylohub-api/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

// GetByClerkUserID devolve (nil, nil) quando não existe linha — o
// contrato do /api/me distingue "sem perfil ainda" de erro de storage.
func (r *BarberGormRepository) GetByClerkUserID(
	ctx context.Context,
	clerkUserID string,
) (*models.Barber, error) {

	var row models.Barber
	err := r.db.WithContext(ctx).
		Where("clerk_user_id = ?", clerkUserID).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// --------------------------------------------------
// Upsert
// --------------------------------------------------

// Upsert: insere se ausente, atualiza se presente (last-write-wins
// sobre o conflito em clerk_user_id).
func (r *BarberGormRepository) Upsert(
	ctx context.Context,
	row *models.Barber,
) (*models.Barber, error) {

	row.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "clerk_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email",
				"first_name",
				"full_name",
				"avg_price",
				"clients_per_day",
				"days_per_week",
				"updated_at",
			}),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}

	// Relê para devolver a linha resultante (id/created_at do insert
	// original quando foi update).
	return r.GetByClerkUserID(ctx, row.ClerkUserID)
}

// --------------------------------------------------
// Avatar
// --------------------------------------------------

func (r *BarberGormRepository) SetAvatarURL(
	ctx context.Context,
	clerkUserID string,
	url string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("clerk_user_id = ?", clerkUserID).
		Updates(map[string]any{
			"avatar_url": url,
			"updated_at": time.Now().UTC(),
		}).Error
}
