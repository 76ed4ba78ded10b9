package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEstimateMismatch is returned by Validate when the document's amounts do not add up.
var ErrEstimateMismatch = errors.New("estimate amounts do not reconcile")

// estimateDateLayout renders dates like "18 October 2026".
const estimateDateLayout = "2 January 2006"

// EstimateDocument is the fully priced estimate handed to the renderers.
type EstimateDocument struct {
	Rooms         []DetailedRoom  `json:"rooms"`
	TotalAreaSqFt decimal.Decimal `json:"totalArea"`
	Charges       []Charge        `json:"designCharges"`
	Subtotal      int64           `json:"subtotal"`
	Tax           int64           `json:"gst"`
	GrandTotal    int64           `json:"grandTotal"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	ClientName    string          `json:"clientName"`
	ProjectName   string          `json:"projectName"`
	LayoutType    string          `json:"layoutType,omitempty"`
}

// TotalRoomAmount is the sum of all room amounts.
func (d EstimateDocument) TotalRoomAmount() int64 {
	var total int64
	for _, r := range d.Rooms {
		total += r.Amount
	}
	return total
}

// Validate checks that the document's amounts reconcile: item sums match room
// amounts, the charge lines follow from the room total, and subtotal, tax and
// grand total follow from rooms and charges.
// Rooms without items are allowed.
func (d EstimateDocument) Validate() error {
	if len(d.Rooms) > MaxRooms {
		return fmt.Errorf("%w: %d rooms, max %d", ErrInputOutOfRange, len(d.Rooms), MaxRooms)
	}
	for i, r := range d.Rooms {
		if len(r.Items) == 0 {
			continue
		}
		if sum := sumLineItems(r.Items); sum != r.Amount {
			return fmt.Errorf("%w: room %d (%s) items sum to %d, room amount is %d",
				ErrEstimateMismatch, i, r.Name, sum, r.Amount)
		}
	}

	want := CalcDesignCharges(d.TotalRoomAmount())
	if len(d.Charges) != len(want) {
		return fmt.Errorf("%w: %d charge lines, want %d", ErrEstimateMismatch, len(d.Charges), len(want))
	}
	for i, c := range d.Charges {
		if c != want[i] {
			return fmt.Errorf("%w: charge %q is %d, want %q at %d",
				ErrEstimateMismatch, c.Description, c.Amount, want[i].Description, want[i].Amount)
		}
	}

	subtotal := d.TotalRoomAmount() + sumCharges(d.Charges)
	if subtotal != d.Subtotal {
		return fmt.Errorf("%w: subtotal is %d, want %d", ErrEstimateMismatch, d.Subtotal, subtotal)
	}
	if tax := CalcGST(subtotal); tax != d.Tax {
		return fmt.Errorf("%w: gst is %d, want %d", ErrEstimateMismatch, d.Tax, tax)
	}
	if d.GrandTotal != d.Subtotal+d.Tax {
		return fmt.Errorf("%w: grand total is %d, want %d", ErrEstimateMismatch, d.GrandTotal, d.Subtotal+d.Tax)
	}
	return nil
}

// Estimator computes estimate documents. It is safe for concurrent use as long
// as its random source is.
type Estimator struct {
	rng Rand
	now func() time.Time
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithRand sets the random source for price variations.
func WithRand(rng Rand) Option {
	return func(e *Estimator) { e.rng = rng }
}

// WithClock sets the clock used for the estimate date.
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) { e.now = now }
}

// NewEstimator returns an Estimator using the process-wide random generator
// and the wall clock unless overridden.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{rng: processRand{}, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate runs the whole pipeline: normalize the layout, price each room,
// split rooms into line items and add charges and tax.
func (e *Estimator) Estimate(in ProjectInput) EstimateDocument {
	layout := NormalizeInput(in)

	category := in.Category
	if category == "" {
		category = string(CategoryStandard)
	}

	rooms := make([]DetailedRoom, 0, len(layout.Rooms))
	var totalRoomAmount int64
	for _, r := range layout.Rooms {
		priced := PriceRoom(r, category, e.rng)
		totalRoomAmount += priced.Amount
		rooms = append(rooms, AllocateLineItems(priced, e.rng))
	}

	totals := CalcEstimateTotals(totalRoomAmount)

	return EstimateDocument{
		Rooms:         rooms,
		TotalAreaSqFt: layout.TotalAreaSqFt,
		Charges:       totals.Charges,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		GrandTotal:    totals.GrandTotal,
		Category:      category,
		Date:          e.now().Format(estimateDateLayout),
		ClientName:    in.ClientName,
		ProjectName:   in.ProjectName,
		LayoutType:    in.LayoutType,
	}
}
