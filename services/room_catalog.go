package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoomType is the catalog key a room name resolves to.
type RoomType int

const (
	RoomTypeUnknown RoomType = iota
	RoomTypeLivingRoom
	RoomTypeMasterBedroom
	RoomTypeBedroom
	RoomTypeKitchen
	RoomTypeBathroom
)

const masterBedroomName = "Master Bedroom"

var roomTypesByName = map[string]RoomType{
	"Living Room": RoomTypeLivingRoom,
	"Kitchen":     RoomTypeKitchen,
	"Bathroom":    RoomTypeBathroom,
}

// ClassifyRoom maps a room name to its catalog. Only the exact name
// "Master Bedroom" is a master bedroom; any other name containing "bedroom"
// shares the bedroom catalog. Other names must match exactly.
func ClassifyRoom(name string) RoomType {
	switch {
	case name == masterBedroomName:
		return RoomTypeMasterBedroom
	case strings.Contains(strings.ToLower(name), "bedroom"):
		return RoomTypeBedroom
	}
	if t, ok := roomTypesByName[name]; ok {
		return t
	}
	return RoomTypeUnknown
}

// CatalogItem is one cost line offered for a room type. Weight is the share
// of the room amount the item starts from.
type CatalogItem struct {
	Description string
	Quantity    int
	Unit        string
	Weight      decimal.Decimal
}

// Item weights, matched against the description in this order.
var weightKeywords = []struct {
	keywords []string
	weight   decimal.Decimal
}{
	{[]string{"False Ceiling"}, decimal.RequireFromString("0.35")},
	{[]string{"TV Unit", "Wardrobe"}, decimal.RequireFromString("0.25")},
	{[]string{"Bed with Storage"}, decimal.RequireFromString("0.20")},
	{[]string{"Civil Work"}, decimal.RequireFromString("0.15")},
}

var defaultItemWeight = decimal.RequireFromString("0.10")

// ItemWeight returns the weight for an item description.
func ItemWeight(description string) decimal.Decimal {
	for _, kw := range weightKeywords {
		for _, k := range kw.keywords {
			if strings.Contains(description, k) {
				return kw.weight
			}
		}
	}
	return defaultItemWeight
}

func catalogItem(description string, quantity int, unit string) CatalogItem {
	return CatalogItem{
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		Weight:      ItemWeight(description),
	}
}

var roomCatalogs = map[RoomType][]CatalogItem{
	RoomTypeLivingRoom: {
		catalogItem("TV Unit with Storage", 1, "Unit"),
		catalogItem("False Ceiling with LED Lights", 1, "Lot"),
		catalogItem("Wall Paneling", 1, "Sq.ft"),
		catalogItem(civilWorkDescription, 1, "Lot"),
		catalogItem("Coffee Table", 1, "Unit"),
		catalogItem("Shoe Cabinet", 1, "Unit"),
	},
	RoomTypeMasterBedroom: {
		catalogItem("Wardrobe with Sliding Doors", 1, "Unit"),
		catalogItem("Bed with Storage", 1, "Unit"),
		catalogItem("Side Tables", 2, "Units"),
		catalogItem("Study Table", 1, "Unit"),
		catalogItem("False Ceiling", 1, "Lot"),
		catalogItem(civilWorkDescription, 1, "Lot"),
	},
	RoomTypeBedroom: {
		catalogItem("Wardrobe with Sliding Doors", 1, "Unit"),
		catalogItem("Bed with Storage", 1, "Unit"),
		catalogItem("Side Tables", 2, "Units"),
		catalogItem("False Ceiling", 1, "Lot"),
		catalogItem(civilWorkDescription, 1, "Lot"),
	},
	RoomTypeKitchen: {
		catalogItem("Modular Kitchen Cabinets", 1, "Lot"),
		catalogItem("Granite Counter Top", 1, "Sq.ft"),
		catalogItem("Tall Unit Storage", 1, "Unit"),
		catalogItem("Sink with Fittings", 1, "Set"),
		catalogItem("Backsplash Tiles", 1, "Sq.ft"),
	},
	RoomTypeBathroom: {
		catalogItem("Vanity Unit", 1, "Unit"),
		catalogItem("Shower Partition", 1, "Unit"),
		catalogItem("Wall Tiles & Flooring", 1, "Sq.ft"),
	},
}

// CatalogFor returns the catalog for a room type. Unknown rooms have none.
func CatalogFor(t RoomType) []CatalogItem {
	return roomCatalogs[t]
}
