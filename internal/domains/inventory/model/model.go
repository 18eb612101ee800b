package model

import "github.com/reagan13/beach-management-system-java-sub000/shared/model"

const (
	TableName  = "inventory"
	EntityName = "inventory_item"

	FieldID           = "id"
	FieldName         = "name"
	FieldCategory     = "category"
	FieldQuantity     = "quantity"
	FieldReorderLevel = "reorder_level"
	FieldUnitPrice    = "unit_price"
)

type Item struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Category     string  `db:"category"`
	Quantity     int     `db:"quantity"`
	ReorderLevel int     `db:"reorder_level"`
	UnitPrice    float64 `db:"unit_price"`
	model.Metadata
}

// NeedsReorder reports whether the stock fell to or below the reorder
// threshold.
func (i *Item) NeedsReorder() bool {
	return i.Quantity <= i.ReorderLevel
}
