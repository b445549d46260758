package placesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripway/internal/repositories"
)

var Module = fx.Provide(
	providePlaceRepo,
	provideItineraryRepo,
)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}
