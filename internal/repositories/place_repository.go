package repositories

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"tripway/internal/models/db_models"
)

type PlaceRepository interface {
	FindByCityAndCategories(ctx context.Context, city string, categories []string) ([]db_models.Place, error)
	FindByCity(ctx context.Context, city string) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// FindByCityAndCategories returns places in the city whose category matches
// any of the given ones, case-insensitively. An empty category set means all.
func (r *placeRepository) FindByCityAndCategories(ctx context.Context, city string, categories []string) ([]db_models.Place, error) {
	if len(categories) == 0 {
		return r.FindByCity(ctx, city)
	}

	patterns := make([]string, 0, len(categories))
	for _, category := range categories {
		patterns = append(patterns, "%"+category+"%")
	}

	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", city).
		Where("category ILIKE ANY(?)", pq.Array(patterns)).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindByCity(ctx context.Context, city string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", city).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
