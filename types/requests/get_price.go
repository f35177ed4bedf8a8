package requests

// Symbol and market are normalized to upper case before the ticker lookup;
// the exchange is the authority on which markets exist.
type GetPriceRequest struct {
	Symbol string `query:"symbol" default:"USDT" validate:"required"`
	Market string `query:"market" default:"KRW" validate:"required"`
}
