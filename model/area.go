package model

// TemplateKind selects which fixed area layout a venue gets.
type TemplateKind string

const (
	TemplateDome       TemplateKind = "DOME"
	TemplateArena      TemplateKind = "ARENA"
	TemplateSmallHouse TemplateKind = "SMALL_HOUSE"
	TemplateStadium    TemplateKind = "STADIUM"
)

// Area is a pricing section within one session. The id is derived from the
// session id and a 2-digit index, so regeneration is stable.
// Invariant: MinPrice <= AvgPrice <= MaxPrice.
type Area struct {
	ID         string `json:"id"`
	SessionID  uint   `json:"session_id"`
	Name       string `json:"name"`
	TotalSeats int    `json:"total_seats"`
	MinPrice   int    `json:"minPrice"`
	AvgPrice   int    `json:"avgPrice"`
	MaxPrice   int    `json:"maxPrice"`
}

// PricePosition places a candidate price on the comparison band
// [0.8*min, 1.2*max] of an area.
type PricePosition struct {
	Percent        float64 `json:"percent"`
	Classification string  `json:"classification"`
}

const (
	PriceBargain = "bargain"
	PriceFair    = "fair"
	PricePremium = "premium"
)
