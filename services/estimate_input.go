package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed shares of the declared total used when only a total carpet area is known.
var (
	livingRoomShare    = decimal.RequireFromString("0.3")
	masterBedroomShare = decimal.RequireFromString("0.2")
	kitchenShare       = decimal.RequireFromString("0.15")
	bathroomShare      = decimal.RequireFromString("0.1")
)

// RoomArea is a named room with its carpet area in square feet.
type RoomArea struct {
	Name     string
	AreaSqFt decimal.Decimal
}

// Floor is one level of a villa. CarpetAreaSqFt is the declared floor figure and
// is what counts towards the total area, independent of the rooms on it.
type Floor struct {
	Name           string
	CarpetAreaSqFt decimal.Decimal
	Rooms          []RoomArea
}

// Layout is the shape of the area information collected by the wizard.
// It is one of VillaLayout, RoomAreasLayout or TotalAreaLayout.
type Layout interface {
	normalize() NormalizedLayout
}

// VillaLayout describes a multi-floor project.
type VillaLayout struct {
	Floors []Floor
}

// RoomAreasLayout lists each room with its own carpet area.
type RoomAreasLayout struct {
	Rooms []RoomArea
}

// TotalAreaLayout only knows the total carpet area and the layout type
// ("2bhk", "3bhk", ...), from which a standard room set is derived.
type TotalAreaLayout struct {
	TotalCarpetAreaSqFt decimal.Decimal
	LayoutType          string
}

// ProjectInput is the payload the wizard hands to the estimator.
type ProjectInput struct {
	Layout      Layout
	Category    string
	ClientName  string
	ProjectName string
	// LayoutType is kept for labelling ("3BHK Project") whatever the layout variant.
	LayoutType string
}

// NormalizedLayout is the uniform room list every layout variant reduces to.
type NormalizedLayout struct {
	TotalAreaSqFt decimal.Decimal
	Rooms         []RoomArea
}

// NormalizeInput reduces the input layout to a flat room list and a total area.
// An input with no layout yields no rooms and a zero total.
func NormalizeInput(in ProjectInput) NormalizedLayout {
	if in.Layout == nil {
		return NormalizedLayout{TotalAreaSqFt: decimal.Zero}
	}
	return in.Layout.normalize()
}

func (v VillaLayout) normalize() NormalizedLayout {
	out := NormalizedLayout{TotalAreaSqFt: decimal.Zero}
	for _, floor := range v.Floors {
		out.TotalAreaSqFt = out.TotalAreaSqFt.Add(nonNegative(floor.CarpetAreaSqFt))
		for _, room := range floor.Rooms {
			out.Rooms = append(out.Rooms, RoomArea{
				Name:     fmt.Sprintf("%s - %s", floor.Name, room.Name),
				AreaSqFt: nonNegative(room.AreaSqFt),
			})
		}
	}
	return out
}

func (l RoomAreasLayout) normalize() NormalizedLayout {
	out := NormalizedLayout{TotalAreaSqFt: decimal.Zero}
	for _, room := range l.Rooms {
		area := nonNegative(room.AreaSqFt)
		out.TotalAreaSqFt = out.TotalAreaSqFt.Add(area)
		out.Rooms = append(out.Rooms, RoomArea{Name: room.Name, AreaSqFt: area})
	}
	return out
}

func (l TotalAreaLayout) normalize() NormalizedLayout {
	total := nonNegative(l.TotalCarpetAreaSqFt)
	bedrooms := ParseBedroomCount(l.LayoutType)

	living := total.Mul(livingRoomShare)
	master := total.Mul(masterBedroomShare)

	divisor := int64(bedrooms - 1)
	if divisor < 1 {
		divisor = 1
	}
	bedroom := total.Sub(living).Sub(master).Div(decimal.NewFromInt(divisor))

	rooms := []RoomArea{
		{Name: "Living Room", AreaSqFt: living},
		{Name: "Master Bedroom", AreaSqFt: master},
	}
	for i := 2; i <= bedrooms; i++ {
		rooms = append(rooms, RoomArea{Name: fmt.Sprintf("Bedroom %d", i), AreaSqFt: bedroom})
	}
	rooms = append(rooms,
		RoomArea{Name: "Kitchen", AreaSqFt: total.Mul(kitchenShare)},
		RoomArea{Name: "Bathroom", AreaSqFt: total.Mul(bathroomShare)},
	)

	return NormalizedLayout{TotalAreaSqFt: total, Rooms: rooms}
}

// ParseBedroomCount reads the bedroom count out of a layout type such as "3bhk".
// Anything that does not start with a number counts as one bedroom; numbers
// too large for an int come back as math.MaxInt.
func ParseBedroomCount(layoutType string) int {
	s := strings.TrimSpace(strings.ToLower(layoutType))
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	switch {
	case errors.Is(err, strconv.ErrRange):
		return n
	case err != nil:
		return 1
	}
	return n
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
