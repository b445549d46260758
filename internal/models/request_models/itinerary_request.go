package request_models

type CreateItineraryRequest struct {
	City      string `json:"city" binding:"required"`
	Days      int    `json:"days" binding:"required,min=1"`
	Interests string `json:"interests"`
	Budget    string `json:"budget"`
	GroupSize int    `json:"group_size"`
}

type SummaryRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
