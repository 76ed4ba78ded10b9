package services

import "github.com/shopspring/decimal"

const (
	civilWorkDescription = "Civil Work (wiring, plumbing, etc.)"
	civilWorkMinimum     = 500
)

var masterBedroomMarkup = decimal.RequireFromString("1.15")

// LineItem is one priced row of a room's bill of quantities.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	Amount      int64  `json:"amount"`
}

// DetailedRoom is a priced room with its line items in catalog order.
type DetailedRoom struct {
	PricedRoom
	Items []LineItem `json:"items"`
}

// AllocateLineItems splits the room amount over the catalog for its room type.
// The item amounts always add up to the room amount.
func AllocateLineItems(room PricedRoom, rng Rand) DetailedRoom {
	roomType := ClassifyRoom(room.Name)
	items := priceLineItems(room.Amount, CatalogFor(roomType), roomType == RoomTypeMasterBedroom, rng)
	reconcileLineItems(items, room.Amount)
	return DetailedRoom{PricedRoom: room, Items: items}
}

// priceLineItems gives each catalog item its weighted share of the amount,
// varied by ±20%, before any reconciliation against the room amount.
func priceLineItems(amount int64, catalog []CatalogItem, master bool, rng Rand) []LineItem {
	items := make([]LineItem, 0, len(catalog))
	base := decimal.NewFromInt(amount)

	for _, c := range catalog {
		factor := decimal.NewFromFloat(0.8 + rng.Float64()*0.4)
		cost := base.Mul(c.Weight).Mul(factor).Round(0).IntPart()
		if cost < 0 {
			cost = -cost
		}

		if c.Description == civilWorkDescription && cost < civilWorkMinimum {
			cost = civilWorkMinimum + int64(rng.IntN(500))
		}

		if master {
			cost = decimal.NewFromInt(cost).Mul(masterBedroomMarkup).Round(0).IntPart()
		}

		items = append(items, LineItem{
			Description: c.Description,
			Quantity:    c.Quantity,
			Unit:        c.Unit,
			Amount:      cost,
		})
	}
	return items
}

// reconcileLineItems moves the rounding difference into the last item. The
// last item can go negative when the other items overshoot; it is not clamped.
func reconcileLineItems(items []LineItem, amount int64) {
	if len(items) == 0 {
		return
	}
	items[len(items)-1].Amount += amount - sumLineItems(items)
}

func sumLineItems(items []LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Amount
	}
	return sum
}
