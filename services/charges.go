package services

import "github.com/shopspring/decimal"

// GSTPercent is the flat tax applied to the subtotal.
const GSTPercent = 18

var (
	designChargeRate = decimal.RequireFromString("0.08")
	gstRate          = decimal.NewFromInt(GSTPercent).Div(hundred)
)

// Shares of the design charges. The rounded shares are not reconciled
// against the design charge total.
var designChargeShares = []struct {
	description string
	share       decimal.Decimal
}{
	{"Design Fee", decimal.RequireFromString("0.65")},
	{"Site Visits & Supervision", decimal.RequireFromString("0.15")},
	{"Project Management", decimal.RequireFromString("0.20")},
}

// Charge is a design or execution charge line.
type Charge struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// EstimateTotals holds the charges and the totals derived from the room amounts.
type EstimateTotals struct {
	Charges    []Charge
	Subtotal   int64
	Tax        int64
	GrandTotal int64
}

// CalcDesignCharges splits 8% of the room total into the execution charge lines.
func CalcDesignCharges(totalRoomAmount int64) []Charge {
	designCharges := decimal.NewFromInt(totalRoomAmount).Mul(designChargeRate).Round(0)

	charges := make([]Charge, 0, len(designChargeShares))
	for _, s := range designChargeShares {
		charges = append(charges, Charge{
			Description: s.description,
			Amount:      designCharges.Mul(s.share).Round(0).IntPart(),
		})
	}
	return charges
}

// CalcGST returns the tax on a subtotal, rounded to the rupee.
func CalcGST(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).Mul(gstRate).Round(0).IntPart()
}

// CalcEstimateTotals derives the charges, subtotal, tax and grand total.
func CalcEstimateTotals(totalRoomAmount int64) EstimateTotals {
	charges := CalcDesignCharges(totalRoomAmount)
	subtotal := totalRoomAmount + sumCharges(charges)
	tax := CalcGST(subtotal)

	return EstimateTotals{
		Charges:    charges,
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}

func sumCharges(charges []Charge) int64 {
	var sum int64
	for _, c := range charges {
		sum += c.Amount
	}
	return sum
}
