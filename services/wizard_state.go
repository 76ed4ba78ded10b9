package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoInput means the request carried no wizard state at all.
var ErrNoInput = errors.New("no estimate input")

// ErrInputOutOfRange means the wizard state asks for more rooms or area than
// a single estimate covers.
var ErrInputOutOfRange = errors.New("estimate input out of range")

// Limits on wizard input. MaxAreaSqFt keeps area × rate well inside int64.
const (
	MaxBedrooms = 20
	MaxRooms    = 200
	MaxAreaSqFt = 1_000_000
)

var maxArea = decimal.NewFromInt(MaxAreaSqFt)

// WizardRoom is a room as collected by the wizard. Areas arrive as strings.
type WizardRoom struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	CarpetArea string `json:"carpetArea"`
}

// WizardFloor is a villa floor as collected by the wizard.
type WizardFloor struct {
	ID         string       `json:"id,omitempty"`
	Name       string       `json:"name"`
	CarpetArea string       `json:"carpetArea"`
	Rooms      []WizardRoom `json:"rooms"`
}

// WizardState is the navigation state the wizard passes to the summary page.
type WizardState struct {
	LayoutType      string        `json:"layoutType,omitempty"`
	IsCustom        bool          `json:"isCustom"`
	IsVilla         bool          `json:"isVilla"`
	Category        string        `json:"category"`
	AreaOption      string        `json:"areaOption,omitempty"`
	TotalCarpetArea string        `json:"totalCarpetArea,omitempty"`
	Rooms           []WizardRoom  `json:"rooms,omitempty"`
	Floors          []WizardFloor `json:"floors,omitempty"`
	ClientName      string        `json:"clientName"`
	ProjectName     string        `json:"projectName"`
}

// DecodeWizardState reads a JSON wizard state. An empty body or a JSON null
// returns ErrNoInput.
func DecodeWizardState(r io.Reader) (WizardState, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return WizardState{}, fmt.Errorf("read wizard state: %w", err)
	}
	return ParseWizardState(raw)
}

// ParseWizardState parses a JSON wizard state.
func ParseWizardState(raw []byte) (WizardState, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return WizardState{}, ErrNoInput
	}

	var state WizardState
	if err := json.Unmarshal(raw, &state); err != nil {
		return WizardState{}, fmt.Errorf("decode wizard state: %w", err)
	}
	if err := state.checkLimits(); err != nil {
		return WizardState{}, err
	}
	return state, nil
}

// checkLimits rejects layouts that would expand into an unbounded number of
// rooms or amounts that overflow.
func (s WizardState) checkLimits() error {
	if n := ParseBedroomCount(s.LayoutType); n > MaxBedrooms {
		return fmt.Errorf("%w: layout %q has %d bedrooms, max %d", ErrInputOutOfRange, s.LayoutType, n, MaxBedrooms)
	}

	areas := []string{s.TotalCarpetArea}
	rooms := len(s.Rooms)
	for _, r := range s.Rooms {
		areas = append(areas, r.CarpetArea)
	}
	for _, f := range s.Floors {
		areas = append(areas, f.CarpetArea)
		rooms += len(f.Rooms)
		for _, r := range f.Rooms {
			areas = append(areas, r.CarpetArea)
		}
	}
	if rooms > MaxRooms {
		return fmt.Errorf("%w: %d rooms, max %d", ErrInputOutOfRange, rooms, MaxRooms)
	}
	for _, a := range areas {
		if ParseArea(a).GreaterThan(maxArea) {
			return fmt.Errorf("%w: carpet area %s exceeds %d sq.ft.", ErrInputOutOfRange, a, MaxAreaSqFt)
		}
	}
	return nil
}

// ProjectInput resolves which layout the wizard filled in. Villa floors take
// precedence, then per-room areas, then the total area. When none is present
// the input has no layout.
func (s WizardState) ProjectInput() ProjectInput {
	in := ProjectInput{
		Category:    s.Category,
		ClientName:  s.ClientName,
		ProjectName: s.ProjectName,
		LayoutType:  s.LayoutType,
	}

	switch {
	case s.IsVilla && s.Floors != nil:
		floors := make([]Floor, 0, len(s.Floors))
		for _, f := range s.Floors {
			floors = append(floors, Floor{
				Name:           f.Name,
				CarpetAreaSqFt: ParseArea(f.CarpetArea),
				Rooms:          wizardRoomAreas(f.Rooms),
			})
		}
		in.Layout = VillaLayout{Floors: floors}
	case s.AreaOption == "rooms" && s.Rooms != nil:
		in.Layout = RoomAreasLayout{Rooms: wizardRoomAreas(s.Rooms)}
	case s.TotalCarpetArea != "":
		in.Layout = TotalAreaLayout{
			TotalCarpetAreaSqFt: ParseArea(s.TotalCarpetArea),
			LayoutType:          s.LayoutType,
		}
	}
	return in
}

func wizardRoomAreas(rooms []WizardRoom) []RoomArea {
	out := make([]RoomArea, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomArea{Name: r.Name, AreaSqFt: ParseArea(r.CarpetArea)})
	}
	return out
}

// ParseArea parses a carpet area entered as text. Blank, malformed and
// negative values count as zero.
func ParseArea(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
