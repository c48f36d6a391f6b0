package model

import (
	"catering/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID        = "id"
	FieldName      = "name"
	FieldPrice     = "price"
	FieldCategory  = "category"
	FieldDietary   = "dietary"
	FieldTags      = "tags"
	FieldAvailable = "available"
)

const (
	DietaryVeg    = "veg"
	DietaryNonVeg = "non-veg"
)

type MenuItem struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description *string        `db:"description"`
	Price       float64        `db:"price"`
	Category    string         `db:"category"`
	Dietary     string         `db:"dietary"`
	Tags        pq.StringArray `db:"tags"`
	Available   bool           `db:"available"`
	model.Metadata
}

// PriceIndex maps item ids to prices.
func PriceIndex(items []MenuItem) map[string]float64 {
	index := make(map[string]float64, len(items))
	for _, item := range items {
		index[item.ID] = item.Price
	}

	return index
}

func ByID(items []MenuItem) map[string]MenuItem {
	index := make(map[string]MenuItem, len(items))
	for _, item := range items {
		index[item.ID] = item
	}

	return index
}
