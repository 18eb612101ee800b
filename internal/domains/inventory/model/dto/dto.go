package dto

import (
	"github.com/google/uuid"

	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/inventory/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	gModel "github.com/reagan13/beach-management-system-java-sub000/shared/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

type CreateItemRequest struct {
	Name         string  `json:"name"          validate:"required,max=100"`
	Category     string  `json:"category"      validate:"omitempty,max=100"`
	Quantity     int     `json:"quantity"      validate:"omitempty,min=0"`
	ReorderLevel int     `json:"reorder_level" validate:"omitempty,min=0"`
	UnitPrice    float64 `json:"unit_price"    validate:"omitempty,gte=0"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	return model.Item{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Category:     c.Category,
		Quantity:     c.Quantity,
		ReorderLevel: c.ReorderLevel,
		UnitPrice:    c.UnitPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name         string   `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Category     string   `db:"category"      json:"category"      validate:"omitempty,max=100"`
	Quantity     *int     `db:"quantity"      json:"quantity"      validate:"omitempty,min=0"`
	ReorderLevel *int     `db:"reorder_level" json:"reorder_level" validate:"omitempty,min=0"`
	UnitPrice    *float64 `db:"unit_price"    json:"unit_price"    validate:"omitempty,gte=0"`
}

type ItemResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	UnitPrice    float64 `json:"unit_price"`
	NeedsReorder bool    `json:"needs_reorder"`
	gDto.Metadata
}

func (i *ItemResponse) FromModel(mod model.Item) {
	i.ID = mod.ID
	i.Name = mod.Name
	i.Category = mod.Category
	i.Quantity = mod.Quantity
	i.ReorderLevel = mod.ReorderLevel
	i.UnitPrice = mod.UnitPrice
	i.NeedsReorder = mod.NeedsReorder()
	i.Metadata.FromModel(mod.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		g.Items[i].FromModel(mod)
	}
}
