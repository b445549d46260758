package response_models

type Place struct {
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Rating    *float64 `json:"rating"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

func (p Place) Coordinate() (*float64, *float64) {
	return p.Latitude, p.Longitude
}
