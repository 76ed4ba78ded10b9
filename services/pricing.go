// Package services provides the estimate calculation and document rendering
// functions for interior design projects.
package services

import (
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is a pricing tier.
type Category string

const (
	CategoryStandard Category = "standard"
	CategoryPremium  Category = "premium"
	CategoryLuxury   Category = "luxury"
)

// ratesPerSqFt holds the base rate in rupees per sq.ft. for each category.
var ratesPerSqFt = map[Category]int64{
	CategoryStandard: 1750,
	CategoryPremium:  2430,
	CategoryLuxury:   3560,
}

var hundred = decimal.NewFromInt(100)

// Rand is the random source used for the price variations.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// processRand draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
type processRand struct{}

func (processRand) IntN(n int) int   { return rand.IntN(n) }
func (processRand) Float64() float64 { return rand.Float64() }

// PricedRoom is a room with its rate and final amount in whole rupees.
type PricedRoom struct {
	Name        string          `json:"name"`
	AreaSqFt    decimal.Decimal `json:"area"`
	RatePerSqFt int64           `json:"rate"`
	Amount      int64           `json:"amount"`
}

// RatePerSqFt returns the rate for a category name. Unknown or empty
// categories are priced at the standard rate.
func RatePerSqFt(category string) int64 {
	if rate, ok := ratesPerSqFt[Category(strings.ToLower(strings.TrimSpace(category)))]; ok {
		return rate
	}
	return ratesPerSqFt[CategoryStandard]
}

// PriceRoom prices a room at the category rate and replaces the last two
// digits of the raw amount with a random figure so totals never look round.
func PriceRoom(room RoomArea, category string, rng Rand) PricedRoom {
	rate := RatePerSqFt(category)
	raw := room.AreaSqFt.Mul(decimal.NewFromInt(rate))
	base := raw.Sub(raw.Mod(hundred)).IntPart()

	return PricedRoom{
		Name:        room.Name,
		AreaSqFt:    room.AreaSqFt,
		RatePerSqFt: rate,
		Amount:      base + roundingJitter(rng),
	}
}

// roundingJitter returns a value in [101, 999] that is never a multiple of 100.
func roundingJitter(rng Rand) int64 {
	hundreds := 1 + rng.IntN(9)
	units := 1 + rng.IntN(99)
	return int64(hundreds*100 + units)
}
