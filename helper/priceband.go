package helper

import "ticket_reseller/model"

// PositionOf places a candidate price on the extended comparison band
// [0.8*min, 1.2*max] of the area and classifies it against the raw
// min/max. Display-only: no state is read or written besides the inputs,
// and any finite price (zero, negative) is accepted.
func PositionOf(area model.Area, price int) model.PricePosition {
	low := float64(area.MinPrice) * 0.8
	high := float64(area.MaxPrice) * 1.2

	percent := 50.0 // degenerate band: park the marker in the center
	if high != low {
		percent = (float64(price) - low) / (high - low) * 100
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
	}

	classification := model.PriceFair
	if price < area.MinPrice {
		classification = model.PriceBargain
	} else if price > area.MaxPrice {
		classification = model.PricePremium
	}

	return model.PricePosition{Percent: percent, Classification: classification}
}
