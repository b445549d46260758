package db_models

// Place is one point-of-interest row. Title is the uniqueness key within a
// city; rating and coordinates are nullable because source data is noisy.
type Place struct {
	BaseModel
	Title     string `gorm:"index:idx_place_city_title,unique"`
	City      string `gorm:"index:idx_place_city_title,unique;index"`
	Category  string `gorm:"index"`
	Rating    *float64
	Latitude  *float64
	Longitude *float64
	Address   string
}
