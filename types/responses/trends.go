package responses

type TrendsResponseData struct {
	Text      string   `json:"text"`
	Citations []string `json:"citations"`
	Model     string   `json:"model"`
}
