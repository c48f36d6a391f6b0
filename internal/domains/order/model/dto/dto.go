package dto

import (
	menuModel "catering/internal/domains/menu/model"
	"catering/internal/domains/order/model"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	gModel "catering/shared/model"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

type ItemRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required,max=64"`
	Quantity   int    `json:"quantity"   validate:"required,gte=1,lte=1000"`
}

type CreateOrderRequest struct {
	Items         []ItemRequest `json:"items"               validate:"required,min=1,max=100,dive"`
	BookingID     *string       `json:"bookingId,omitempty" validate:"omitempty,max=64"`
	PaymentMethod string        `json:"paymentMethod"       validate:"required,oneof=cash card upi"`
}

// MenuIDs lists the referenced menu items, first occurrence first.
func (r *CreateOrderRequest) MenuIDs() []string {
	ids := make([]string, 0, len(r.Items))
	seen := map[string]bool{}

	for _, item := range r.Items {
		id := strings.TrimSpace(item.MenuItemID)
		if seen[id] {
			continue
		}

		seen[id] = true
		ids = append(ids, id)
	}

	return ids
}

// ToModel snapshots every line against menu and totals the order. Unknown or unavailable items are rejected.
func (r *CreateOrderRequest) ToModel(owner string, menu map[string]menuModel.MenuItem) (model.Order, error) {
	items := make(model.Items, 0, len(r.Items))

	var total float64

	for _, line := range r.Items {
		id := strings.TrimSpace(line.MenuItemID)

		item, ok := menu[id]
		if !ok {
			return model.Order{}, failure.BadRequestFromString(fmt.Sprintf("menu item %s does not exist", id))
		}

		if !item.Available {
			return model.Order{}, failure.BadRequestFromString(fmt.Sprintf("menu item %s is not available", item.Name))
		}

		items = append(items, model.Item{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   line.Quantity,
		})

		total += item.Price * float64(line.Quantity)
	}

	return model.Order{
		ID:            uuid.NewString(),
		UserID:        owner,
		BookingID:     r.BookingID,
		Items:         items,
		Total:         math.Round(total*100) / 100,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
		PaymentMethod: r.PaymentMethod,
		Metadata:      gModel.NewMetadata(owner),
	}, nil
}

type UpdateOrderStatusRequest struct {
	Status        *string `db:"status"         json:"status,omitempty"        validate:"omitempty,oneof=pending preparing delivered cancelled"`
	PaymentStatus *string `db:"payment_status" json:"paymentStatus,omitempty" validate:"omitempty,oneof=pending paid refunded"`
}

func (r *UpdateOrderStatusRequest) Empty() bool {
	return r.Status == nil && r.PaymentStatus == nil
}

type ItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type OrderResponse struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	BookingID     *string        `json:"bookingId,omitempty"`
	Items         []ItemResponse `json:"items"`
	Total         float64        `json:"total"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	PaymentMethod string         `json:"paymentMethod"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(order model.Order) {
	r.ID = order.ID
	r.UserID = order.UserID
	r.BookingID = order.BookingID
	r.Total = order.Total
	r.Status = order.Status
	r.PaymentStatus = order.PaymentStatus
	r.PaymentMethod = order.PaymentMethod
	r.Metadata.FromModel(order.Metadata)

	r.Items = make([]ItemResponse, len(order.Items))
	for i, item := range order.Items {
		r.Items[i] = ItemResponse(item)
	}
}

func (r OrderResponse) NotificationKey() string {
	return r.ID
}

func FromModels(orders []model.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, order := range orders {
		res[i].FromModel(order)
	}

	return res
}
