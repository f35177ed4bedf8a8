package requests

type CreateTrendsRequest struct {
	Query string `json:"query" validate:"required"`
}
