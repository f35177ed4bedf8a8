package requests

import "encoding/json"

// Quote carries a previously computed quote result verbatim; it is embedded
// into the analysis prompt for numeric grounding and never interpreted here.
type CreateReportRequest struct {
	Query string          `json:"query" validate:"required"`
	Quote json.RawMessage `json:"quote,omitempty"`
}
