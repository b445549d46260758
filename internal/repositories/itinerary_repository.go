package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripway/internal/models/db_models"
)

type ItineraryRepository interface {
	Save(ctx context.Context, saved *db_models.SavedItinerary) error
	GetByUserAndPlan(ctx context.Context, userID, planID string) (*db_models.SavedItinerary, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.SavedItinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// Save upserts on (user_id, plan_id) so re-saving a plan replaces the payload.
func (r *itineraryRepository) Save(ctx context.Context, saved *db_models.SavedItinerary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "plan_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"destination", "interests", "payload", "updated_at"}),
		}).
		Create(saved).Error
}

func (r *itineraryRepository) GetByUserAndPlan(ctx context.Context, userID, planID string) (*db_models.SavedItinerary, error) {
	var saved db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		First(&saved, "user_id = ? AND plan_id = ?", userID, planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &saved, nil
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID string) ([]db_models.SavedItinerary, error) {
	var saved []db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}
