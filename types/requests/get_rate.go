package requests

// Base and quote are normalized and checked against the supported pair set by
// the rate service, which owns the UnsupportedPair error.
type GetRateRequest struct {
	Base  string `query:"base" default:"USD" validate:"required"`
	Quote string `query:"quote" default:"KRW" validate:"required"`
}
