package dto

import (
	"catering/internal/domains/menu/model"
	"catering/shared"
	gDto "catering/shared/dto"
	gModel "catering/shared/model"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateMenuItemRequest struct {
	Name        string   `json:"name"                  validate:"required,min=2,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       float64  `json:"price"                 validate:"gte=0"`
	Category    string   `json:"category"              validate:"required,max=60"`
	Dietary     string   `json:"dietary"               validate:"required,oneof=veg non-veg"`
	Tags        []string `json:"tags,omitempty"        validate:"omitempty,dive,required,max=60"`
	Available   *bool    `json:"available,omitempty"`
}

func (r *CreateMenuItemRequest) ToModel(actor string) model.MenuItem {
	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return model.MenuItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       r.Price,
		Category:    strings.ToLower(strings.TrimSpace(r.Category)),
		Dietary:     r.Dietary,
		Tags:        pq.StringArray(shared.Unique(r.Tags)),
		Available:   available,
		Metadata:    gModel.NewMetadata(actor),
	}
}

type UpdateMenuItemRequest struct {
	Name        *string        `db:"name"        json:"name,omitempty"        validate:"omitempty,min=2,max=120"`
	Description *string        `db:"description" json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *float64       `db:"price"       json:"price,omitempty"       validate:"omitempty,gte=0"`
	Category    *string        `db:"category"    json:"category,omitempty"    validate:"omitempty,max=60"`
	Dietary     *string        `db:"dietary"     json:"dietary,omitempty"     validate:"omitempty,oneof=veg non-veg"`
	Tags        pq.StringArray `db:"tags"        json:"tags,omitempty"        validate:"omitempty,dive,required,max=60"`
	Available   *bool          `db:"available"   json:"available,omitempty"`
}

// Filter carries the listing query string.
type Filter struct {
	Name      string
	Category  string
	Dietary   string
	Tag       string
	Available *bool
}

func (f Filter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Name != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldName, Value: f.Name, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	if f.Category != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldCategory, Value: strings.ToLower(f.Category), Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Dietary != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldDietary, Value: f.Dietary, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Tag != "" {
		filters = append(filters, gDto.Filter{ArgName: "tag", Field: model.FieldTags, Value: f.Tag, Operator: gDto.FilterOperatorAny, Table: model.TableName})
	}

	if f.Available != nil {
		filters = append(filters, gDto.Filter{Field: model.FieldAvailable, Value: *f.Available, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.NewFilterGroup(filters...)
}

type MenuItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Dietary     string   `json:"dietary"`
	Tags        []string `json:"tags"`
	Available   bool     `json:"available"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(item model.MenuItem) {
	r.ID = item.ID
	r.Name = item.Name
	r.Description = item.Description
	r.Price = item.Price
	r.Category = item.Category
	r.Dietary = item.Dietary
	r.Available = item.Available
	r.Tags = []string(item.Tags)
	r.Metadata.FromModel(item.Metadata)

	if r.Tags == nil {
		r.Tags = []string{}
	}
}

func FromModels(items []model.MenuItem) []MenuItemResponse {
	res := make([]MenuItemResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
	}

	return res
}

// Summary is the projection of a menu item embedded in bookings.
type Summary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Dietary  string  `json:"dietary"`
}

func NewSummary(item model.MenuItem) Summary {
	return Summary{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		Dietary:  item.Dietary,
	}
}
