package request_models

type FlightSearchRequest struct {
	DepartureLatitude  *float64 `json:"departure_latitude" binding:"required"`
	DepartureLongitude *float64 `json:"departure_longitude" binding:"required"`
	ArrivalCity        string   `json:"arrival_city" binding:"required"`
	OutboundDate       string   `json:"outbound_date" binding:"required"`
	ReturnDate         string   `json:"return_date"`
	TravelClass        string   `json:"travel_class"`
	Currency           string   `json:"currency"`
	Limit              int      `json:"limit"`
}

type HotelSearchRequest struct {
	Location     string   `json:"location" binding:"required"`
	CheckInDate  string   `json:"check_in_date" binding:"required"`
	CheckOutDate string   `json:"check_out_date" binding:"required"`
	Adults       int      `json:"adults"`
	Children     int      `json:"children"`
	Currency     string   `json:"currency"`
	Limit        int      `json:"limit"`
	MinRating    *float64 `json:"min_rating"`
	MaxPrice     *float64 `json:"max_price"`
	MaxDistance  *float64 `json:"max_distance"`
	Amenities    []string `json:"amenities"`
}
