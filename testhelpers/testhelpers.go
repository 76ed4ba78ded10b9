// Package testhelpers provides utilities for testing the estimator and its
// HTTP surface.
package testhelpers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"choicedge/services"
)

// FixedDate is the clock reading used by NewTestEstimator.
var FixedDate = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// FixedRand is a deterministic random source. IntN returns Int clamped to
// [0, n) and Float64 always returns Float.
type FixedRand struct {
	Int   int
	Float float64
}

func (r FixedRand) IntN(n int) int {
	if r.Int >= n {
		return n - 1
	}
	if r.Int < 0 {
		return 0
	}
	return r.Int
}

func (r FixedRand) Float64() float64 {
	return r.Float
}

// NewTestEstimator returns an Estimator with a fixed random source (no price
// variation on line items) and the FixedDate clock.
func NewTestEstimator(t *testing.T) *services.Estimator {
	t.Helper()

	return services.NewEstimator(
		services.WithRand(FixedRand{Int: 0, Float: 0.5}),
		services.WithClock(func() time.Time { return FixedDate }),
	)
}

// SampleWizardState returns a 3BHK premium project entered as a total carpet area.
func SampleWizardState() services.WizardState {
	return services.WizardState{
		LayoutType:      "3BHK",
		Category:        "premium",
		AreaOption:      "total",
		TotalCarpetArea: "1000",
		ClientName:      "Asha Deshmukh",
		ProjectName:     "Civil Lines Residence",
	}
}

// SampleRoomsWizardState returns a custom project with per-room areas.
func SampleRoomsWizardState() services.WizardState {
	return services.WizardState{
		IsCustom:   true,
		Category:   "standard",
		AreaOption: "rooms",
		Rooms: []services.WizardRoom{
			{ID: "room-1", Name: "Living Room", CarpetArea: "250"},
			{ID: "room-2", Name: "Kitchen", CarpetArea: "120"},
		},
		ClientName: "Rohan Kulkarni",
	}
}

// WizardJSON marshals a wizard state for use as a request body or form value.
func WizardJSON(t *testing.T, state services.WizardState) string {
	t.Helper()

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("failed to marshal wizard state: %v", err)
	}
	return string(raw)
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
