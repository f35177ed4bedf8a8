package responses

type ReportResponseData struct {
	Query    string `json:"query"`
	Analysis string `json:"analysis"`
	Model    string `json:"model"`
}
