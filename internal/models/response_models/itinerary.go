package response_models

type Itinerary struct {
	Destination   string         `json:"destination"`
	RequestedDays int            `json:"requested_days"`
	ActualDays    int            `json:"actual_days"`
	GroupSize     int            `json:"group_size,omitempty"`
	Budget        string         `json:"budget,omitempty"`
	Interests     []string       `json:"interests"`
	Days          []ItineraryDay `json:"days"`
	Notes         []string       `json:"notes"`
}

type ItineraryDay struct {
	Day       int      `json:"day"`
	Morning   *DaySlot `json:"morning,omitempty"`
	Lunch     *DaySlot `json:"lunch,omitempty"`
	Afternoon *DaySlot `json:"afternoon,omitempty"`
	Dinner    *DaySlot `json:"dinner,omitempty"`
}

type DaySlot struct {
	Activity    string       `json:"activity"`
	Location    string       `json:"location,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Rating      *float64     `json:"rating,omitempty"`
	Category    string       `json:"category"`
	Time        string       `json:"time"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SavedItinerary struct {
	PlanID      string    `json:"plan_id"`
	Destination string    `json:"destination"`
	Interests   []string  `json:"interests"`
	Itinerary   Itinerary `json:"itinerary"`
}
